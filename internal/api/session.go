package api

import (
	"encoding/json"

	"github.com/iliyamo/storefront-client/internal/model"
)

// normalizeSession folds the backend's auth response variants into the
// single model.Session shape.  Two drifts have been observed between
// backend versions: the token arrives under `jwt` or `token`, and the
// user arrives nested under `user` or flat at the top level.  Nothing
// past the gateway ever sees a raw auth payload.
func normalizeSession(data []byte) (model.Session, error) {
	var env struct {
		JWT   string          `json:"jwt"`
		Token string          `json:"token"`
		User  json.RawMessage `json:"user"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return model.Session{}, &Error{Kind: ErrClient, Message: "unexpected response from server"}
	}

	token := env.JWT
	if token == "" {
		token = env.Token
	}

	var user model.User
	if len(env.User) > 0 && string(env.User) != "null" {
		if err := json.Unmarshal(env.User, &user); err != nil {
			return model.Session{}, &Error{Kind: ErrClient, Message: "unexpected response from server"}
		}
	} else if err := json.Unmarshal(data, &user); err != nil {
		return model.Session{}, &Error{Kind: ErrClient, Message: "unexpected response from server"}
	}

	// Login is only a success when the backend handed over both halves
	// of a session.
	if token == "" || (user.ID == 0 && user.Email == "") {
		return model.Session{}, &Error{Kind: ErrClient, Message: "incomplete auth response"}
	}
	return model.Session{User: &user, Token: token}, nil
}
