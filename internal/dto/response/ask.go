package response

type AskResponse struct {
	Answer string `json:"answer"`
}
