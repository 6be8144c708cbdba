package adaptor

import (
	"io"
	"net/http"

	"go.uber.org/zap"

	"legal-assistant/internal/usecase"
	"legal-assistant/pkg/utils"
)

// maxUploadBytes caps document uploads at 20 MB.
const maxUploadBytes = 20 << 20

type AskHandler struct {
	service usecase.AskService
	log     *zap.Logger
}

func NewAskHandler(service usecase.AskService, log *zap.Logger) *AskHandler {
	return &AskHandler{
		service: service,
		log:     log,
	}
}

// Ask handles POST /ask: multipart upload with a "file" part and a
// "question" field.
func (h *AskHandler) Ask(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart body", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.ResponseBadRequest(w, "Missing file upload", nil)
		return
	}
	defer file.Close()

	question := r.FormValue("question")
	if question == "" {
		utils.ResponseBadRequest(w, "Missing question", nil)
		return
	}

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		h.log.Error("Failed to read upload", zap.Error(err), zap.String("filename", header.Filename))
		utils.ResponseBadRequest(w, "Failed to read upload", nil)
		return
	}

	resp, err := h.service.Answer(r.Context(), fileBytes, header.Filename, question)
	if err != nil {
		handleServiceError(w, h.log, err, "answer question")
		return
	}

	utils.ResponseSuccess(w, "Question answered", resp)
}
