package response

// Resp is the envelope shared by every endpoint.
type Resp struct {
	Success bool     `json:"success"`
	Data    any      `json:"data,omitempty"`
	Message string   `json:"message,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// AuthResp is returned by the login endpoint.
type AuthResp struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
	User    any    `json:"user,omitempty"`
	Message string `json:"message,omitempty"`
}

func OK(data any, msg string) Resp {
	return Resp{Success: true, Data: data, Message: msg}
}

func Error(msg string, errs ...string) Resp {
	return Resp{Success: false, Message: msg, Errors: errs}
}
