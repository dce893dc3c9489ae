package response

// NextCursorHeader carries the keyset cursor of the next page.
const NextCursorHeader = "X-Next-Cursor"

type CancelResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}
