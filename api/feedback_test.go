package api

import "testing"

func TestToastDefaults(t *testing.T) {
	h := newFakeHost()
	c := New(h)

	c.ShowToast(ToastConfig{Text: "saved"})

	call := h.last(t)
	if call.params["type"] != ToastNone {
		t.Fatalf("expected default type %q, got %v", ToastNone, call.params["type"])
	}
	if call.params["duration"] != 2000 {
		t.Fatalf("expected default duration 2000, got %v", call.params["duration"])
	}
	if call.params["text"] != "saved" {
		t.Fatalf("expected text forwarded, got %v", call.params["text"])
	}
}

func TestToastExplicitValuesKept(t *testing.T) {
	h := newFakeHost()
	c := New(h)

	c.ShowToast(ToastConfig{Type: ToastSuccess, Duration: 500})

	call := h.last(t)
	if call.params["type"] != ToastSuccess {
		t.Fatalf("expected explicit type kept, got %v", call.params["type"])
	}
	if call.params["duration"] != 500 {
		t.Fatalf("expected explicit duration kept, got %v", call.params["duration"])
	}
}

func TestLoadingDelayDefaultsToZero(t *testing.T) {
	h := newFakeHost()
	c := New(h)

	c.ShowLoading(LoadingConfig{Text: "syncing"})

	call := h.last(t)
	if call.params["delay"] != 0 {
		t.Fatalf("expected delay 0, got %v", call.params["delay"])
	}
}

func TestHideLoadingIsSynchronous(t *testing.T) {
	h := newFakeHost()
	c := New(h)

	c.HideLoading()

	if h.last(t).op != "hideLoading" {
		t.Fatalf("expected hideLoading, got %q", h.last(t).op)
	}
}

func TestAnimationDefaults(t *testing.T) {
	h := newFakeHost()
	c := New(h)

	c.CreateAnimation(AnimationConfig{})

	call := h.last(t)
	if call.params["duration"] != 400 {
		t.Fatalf("expected default duration 400, got %v", call.params["duration"])
	}
	if call.params["timingFunction"] != "linear" {
		t.Fatalf("expected default timing linear, got %v", call.params["timingFunction"])
	}
}

func TestNavigationBarResetDefaultsFalse(t *testing.T) {
	h := newFakeHost()
	c := New(h)

	c.SetNavigationBar(NavigationBarConfig{Title: "Home"})

	call := h.last(t)
	if call.params["reset"] != false {
		t.Fatalf("expected reset false, got %v", call.params["reset"])
	}
}
