package res

type CommonResponse[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	User    T      `json:"user"`
}
