package api

import "github.com/nanoapp/hostkit/hostcall"

type DatePickerConfig struct {
	Format      string
	CurrentDate string
}

// DatePicker resolves with the picked date string only.
func (c *Client) DatePicker(cfg DatePickerConfig) *hostcall.Promise[string] {
	params := map[string]any{}
	if cfg.Format != "" {
		params["format"] = cfg.Format
	}
	if cfg.CurrentDate != "" {
		params["currentDate"] = cfg.CurrentDate
	}
	return callField[string](c, "datePicker", "date", params)
}

type ContactConfig struct {
	Title             string
	Multiple          bool
	LimitTips         string
	MaxUsers          int
	PickedUsers       []string
	DisabledUsers     []string
	RequiredUsers     []string
	PickedDepartments []string
	PermissionType    string
}

// ChooseContact opens the host's contact picker and resolves with the
// full selection payload.
func (c *Client) ChooseContact(cfg ContactConfig) *hostcall.Promise[map[string]any] {
	params := map[string]any{}
	if cfg.Title != "" {
		params["title"] = cfg.Title
	}
	if cfg.Multiple {
		params["multiple"] = true
	}
	if cfg.LimitTips != "" {
		params["limitTips"] = cfg.LimitTips
	}
	if cfg.MaxUsers != 0 {
		params["maxUsers"] = cfg.MaxUsers
	}
	if len(cfg.PickedUsers) > 0 {
		params["pickedUsers"] = cfg.PickedUsers
	}
	if len(cfg.DisabledUsers) > 0 {
		params["disabledUsers"] = cfg.DisabledUsers
	}
	if len(cfg.RequiredUsers) > 0 {
		params["requiredUsers"] = cfg.RequiredUsers
	}
	if len(cfg.PickedDepartments) > 0 {
		params["pickedDepartments"] = cfg.PickedDepartments
	}
	if cfg.PermissionType != "" {
		params["permissionType"] = cfg.PermissionType
	}
	return c.call("chooseContact", params)
}

// ChooseDepartments opens the department picker and resolves with the
// full selection payload.
func (c *Client) ChooseDepartments(cfg ContactConfig) *hostcall.Promise[map[string]any] {
	params := map[string]any{}
	if cfg.Title != "" {
		params["title"] = cfg.Title
	}
	if cfg.Multiple {
		params["multiple"] = true
	}
	if len(cfg.PickedDepartments) > 0 {
		params["pickedDepartments"] = cfg.PickedDepartments
	}
	if cfg.PermissionType != "" {
		params["permissionType"] = cfg.PermissionType
	}
	return c.call("chooseDepartments", params)
}

type GroupChatConfig struct {
	Users []string
	Title string
}

// CreateGroupChat resolves with the created chat's identifier field,
// extracted exactly as the host documents it.
func (c *Client) CreateGroupChat(cfg GroupChatConfig) *hostcall.Promise[any] {
	params := map[string]any{}
	if len(cfg.Users) > 0 {
		params["users"] = cfg.Users
	}
	if cfg.Title != "" {
		params["title"] = cfg.Title
	}
	return callField[any](c, "createGroupChat", "id", params)
}
