package permissions

import (
	_ "embed"
	"encoding/json"
	"slices"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// Permission maps one booking action to the roles allowed to perform it.
// Skip marks actions open to every role.
type Permission struct {
	Action string   `json:"action"`
	Roles  []string `json:"roles"`
	Skip   bool     `json:"skip"`
}

type PermissionData struct {
	Actions []Permission `json:"actions"`
	Skip    bool         `json:"skip"`
}

func (r *PermissionData) FindPermission(action string) Permission {
	idx := slices.IndexFunc(r.Actions, func(rp Permission) bool {
		return rp.Action == action
	})

	if idx == -1 {
		return Permission{}
	}

	return r.Actions[idx]
}

// Allows reports whether role may perform action. Unlisted actions are open;
// only an explicit role list restricts.
func (r *PermissionData) Allows(action, role string) bool {
	if r.Skip {
		return true
	}

	permission := r.FindPermission(action)
	if permission.Action == "" || permission.Skip {
		return true
	}

	return slices.Contains(permission.Roles, role)
}

func Get() *PermissionData {
	var permissions PermissionData

	err := json.Unmarshal(permissionsData, &permissions)
	if err != nil {
		log.Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	log.Info().Int("actions", len(permissions.Actions)).Msg("Successfully loaded embedded permissions")

	return &permissions
}
