// Package devhost is an in-process implementation of the host capability
// surface. It backs headless embeddings, examples and integration tests
// with real behavior: badger-backed storage, live HTTP for the network
// ops, a seeded contact directory for the pickers, and scriptable
// responders for everything a user would normally answer on screen.
package devhost

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/dgraph-io/badger/v4"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/puzpuzpuz/xsync/v4"
	"github.com/tidwall/btree"
	"golang.org/x/sync/singleflight"

	"github.com/nanoapp/hostkit/hostcall"
)

const downloadCacheSize = 64

type Options struct {
	// DataDir holds the storage database. Empty runs badger in memory.
	DataDir string
	Logger  *slog.Logger
	// Responder answers interactive ops (dialogs, pickers, date picker).
	// Nil falls back to the built-in defaults.
	Responder   Responder
	Location    LocationSource
	SystemInfo  map[string]any
	HTTPClient  *http.Client
	People      []Person
	Departments []Department
}

type DevHost struct {
	logger    *slog.Logger
	responder Responder

	db *badger.DB

	httpc     *http.Client
	downloads *lru.Cache[string, string]

	locSource LocationSource
	locCache  *xsync.Map[string, locEntry]
	locGroup  singleflight.Group

	people *btree.BTreeG[Person]
	depts  *btree.BTreeG[Department]

	mu      sync.Mutex
	pages   []string
	sysInfo map[string]any
}

var _ hostcall.Host = (*DevHost)(nil)

func New(opts Options) (*DevHost, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	db, err := openStorage(opts.DataDir)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	downloads, err := lru.New[string, string](downloadCacheSize)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("download cache: %w", err)
	}

	httpc := opts.HTTPClient
	if httpc == nil {
		httpc = http.DefaultClient
	}

	locSource := opts.Location
	if locSource == nil {
		locSource = fixedLocation{}
	}

	sysInfo := opts.SystemInfo
	if sysInfo == nil {
		sysInfo = defaultSystemInfo()
	}

	d := &DevHost{
		logger:    logger,
		responder: opts.Responder,
		db:        db,
		httpc:     httpc,
		downloads: downloads,
		locSource: locSource,
		locCache:  xsync.NewMap[string, locEntry](),
		people:    btree.NewBTreeG(byPersonName),
		depts:     btree.NewBTreeG(byDepartmentName),
		sysInfo:   sysInfo,
	}
	for _, p := range opts.People {
		d.people.Set(p)
	}
	for _, dep := range opts.Departments {
		d.depts.Set(dep)
	}
	return d, nil
}

func (d *DevHost) Close() error {
	return d.db.Close()
}

// Invoke dispatches on its own goroutine so callbacks fire the way an
// event-loop host would: after the call returns.
func (d *DevHost) Invoke(op string, params map[string]any, cb hostcall.Callbacks) {
	go func() {
		payload, err := d.dispatch(op, params)
		if err != nil {
			d.logger.Debug("devhost op failed", "op", op, "err", err)
			if cb.Fail != nil {
				cb.Fail(failPayload(err))
			}
			return
		}
		if cb.Success != nil {
			cb.Success(payload)
		}
	}()
}

func (d *DevHost) InvokeSync(op string, params map[string]any) any {
	switch op {
	case "getSystemInfoSync":
		return d.sysInfo
	case "getStorageSync":
		v, err := d.storageGet(asString(params["key"]))
		if err != nil {
			return nil
		}
		return v
	case "setStorageSync":
		_ = d.storageSet(asString(params["key"]), params["data"])
		return nil
	case "removeStorageSync":
		_ = d.storageRemove(asString(params["key"]))
		return nil
	case "clearStorageSync":
		_ = d.storageClear()
		return nil
	case "navigateBack":
		d.popPage()
		return nil
	case "createCanvasContext":
		return map[string]any{"canvasId": asString(params["canvasId"])}
	case "createSelectorQuery":
		return map[string]any{}
	case "hideLoading", "hideKeyboard", "stopPullDownRefresh", "pageScrollTo":
		return nil
	}
	d.logger.Debug("devhost unknown sync op", "op", op)
	return nil
}

func (d *DevHost) dispatch(op string, params map[string]any) (map[string]any, error) {
	switch op {
	case "alert":
		return d.respond(op, params, func() (map[string]any, error) {
			return map[string]any{}, nil
		})
	case "confirm":
		return d.respond(op, params, func() (map[string]any, error) {
			return map[string]any{"confirm": true}, nil
		})
	case "showActionSheet":
		return d.respond(op, params, func() (map[string]any, error) {
			return map[string]any{"index": 0}, nil
		})
	case "datePicker":
		return d.respond(op, params, defaultDate)
	case "showToast", "showLoading", "createAnimation", "setNavigationBar", "openLocation":
		return map[string]any{}, nil

	case "navigateTo":
		d.pushPage(asString(params["url"]))
		return map[string]any{}, nil
	case "redirectTo":
		d.replacePage(asString(params["url"]))
		return map[string]any{}, nil
	case "openLink":
		return d.openLink(asString(params["url"]))

	case "setStorage":
		return map[string]any{}, d.storageSet(asString(params["key"]), params["data"])
	case "getStorage":
		v, err := d.storageGet(asString(params["key"]))
		if err != nil {
			return nil, err
		}
		return map[string]any{"data": v}, nil
	case "removeStorage":
		return map[string]any{}, d.storageRemove(asString(params["key"]))
	case "clearStorage":
		return map[string]any{}, d.storageClear()

	case "httpRequest":
		return d.httpRequest(params)
	case "uploadFile":
		return d.uploadFile(params)
	case "downloadFile":
		return d.downloadFile(params)

	case "getLocation":
		return d.getLocation(params)
	case "getSystemInfo":
		return d.sysInfo, nil
	case "getNetworkType":
		return map[string]any{"networkAvailable": true, "networkType": "wifi"}, nil
	case "getAuthCode":
		return d.mintAuthCode()

	case "chooseContact":
		return d.respond(op, params, func() (map[string]any, error) {
			return d.pickUsers(params)
		})
	case "chooseDepartments":
		return d.respond(op, params, func() (map[string]any, error) {
			return d.pickDepartments(params)
		})
	case "createGroupChat":
		return d.createGroupChat(params)
	}
	return nil, &OpError{Code: codeUnknownOp, Message: fmt.Sprintf("unknown op %q", op)}
}

func (d *DevHost) respond(op string, params map[string]any, fallback func() (map[string]any, error)) (map[string]any, error) {
	if d.responder != nil {
		return d.responder.Respond(op, params)
	}
	return fallback()
}
