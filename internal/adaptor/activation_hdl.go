package adaptor

import (
	"encoding/json"
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"legal-assistant/internal/dto/request"
	"legal-assistant/internal/usecase"
	"legal-assistant/pkg/utils"
)

// activateFormTpl is the set-password page an activation link opens.
var activateFormTpl = template.Must(template.New("activate").Parse(`<html>
<body>
	<h2>Set Your Password</h2>
	<form action="/activate" method="post">
		<input type="hidden" name="token" value="{{.Token}}">
		<input type="password" name="password" placeholder="New password" required>
		<button type="submit">Activate Account</button>
	</form>
</body>
</html>`))

const activateSuccessHTML = `<h3>Account activated. You may now log in.</h3>`

type ActivationHandler struct {
	service usecase.ActivationService
	log     *zap.Logger
}

func NewActivationHandler(service usecase.ActivationService, log *zap.Logger) *ActivationHandler {
	return &ActivationHandler{
		service: service,
		log:     log,
	}
}

// SendActivation handles POST /send-activation (admin only).
func (h *ActivationHandler) SendActivation(w http.ResponseWriter, r *http.Request) {
	var req request.SendActivationRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.RequestActivation(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "send activation")
		return
	}

	utils.ResponseSuccess(w, "Activation email sent", resp)
}

// ActivateForm handles GET /activate and renders the set-password form for
// the token in the query string.
func (h *ActivationHandler) ActivateForm(w http.ResponseWriter, r *http.Request) {
	tokenStr := r.URL.Query().Get("token")
	if tokenStr == "" {
		utils.ResponseBadRequest(w, "Missing activation token", nil)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := activateFormTpl.Execute(w, map[string]string{"Token": tokenStr}); err != nil {
		h.log.Error("Failed to render activation form", zap.Error(err))
	}
}

// Activate handles POST /activate: redeem the token, set the password.
func (h *ActivationHandler) Activate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	req := request.RedeemActivationRequest{
		Token:    r.PostFormValue("token"),
		Password: r.PostFormValue("password"),
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if _, err := h.service.Redeem(r.Context(), &req); err != nil {
		handleServiceError(w, h.log, err, "activate")
		return
	}

	// Browser form post; answer with a plain confirmation page
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(activateSuccessHTML))
}
