package client

// Action selects the remote operation.
type Action string

const (
	ActionLogin          Action = "LOGIN"
	ActionSignup         Action = "SIGNUP"
	ActionUpdateSettings Action = "UPDATE_SETTINGS"
)

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateSettingsPayload struct {
	Email    string `json:"email"`
	DarkMode bool   `json:"darkMode"`
}
