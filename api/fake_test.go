package api

import (
	"testing"

	"github.com/nanoapp/hostkit/hostcall"
)

type hostCall struct {
	op     string
	params map[string]any
}

// fakeHost answers every Invoke inline from canned payloads, recording
// what the adapter forwarded.
type fakeHost struct {
	calls   []hostCall
	succeed map[string]map[string]any
	fail    map[string]map[string]any
	syncRet map[string]any
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		succeed: make(map[string]map[string]any),
		fail:    make(map[string]map[string]any),
		syncRet: make(map[string]any),
	}
}

func (h *fakeHost) Invoke(op string, params map[string]any, cb hostcall.Callbacks) {
	h.calls = append(h.calls, hostCall{op: op, params: params})
	if reason, ok := h.fail[op]; ok {
		cb.Fail(reason)
		return
	}
	cb.Success(h.succeed[op])
}

func (h *fakeHost) InvokeSync(op string, params map[string]any) any {
	h.calls = append(h.calls, hostCall{op: op, params: params})
	return h.syncRet[op]
}

func (h *fakeHost) last(t *testing.T) hostCall {
	t.Helper()
	if len(h.calls) == 0 {
		t.Fatal("no host call recorded")
	}
	return h.calls[len(h.calls)-1]
}
