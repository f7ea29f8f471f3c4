package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/dietlens/platescan/internal/scan/service"
	"github.com/dietlens/platescan/internal/scan/vision"
	"github.com/dietlens/platescan/pkg/httpx"
	"github.com/dietlens/platescan/pkg/scanapi"
	"github.com/dietlens/platescan/pkg/slogx"
)

// maxScanUploadBytes bounds the multipart body a scan request may carry.
const maxScanUploadBytes = 10 << 20 // 10 MiB

type ScanHandler struct {
	ScanService *service.ScanService
}

// ServeHTTP handles meal photo scans.
//
//	@Summary		Scan a meal photo
//	@Description	Sends the uploaded image and prompt to the vision model and
//	@Description	returns the detected foods and their positions. Successful
//	@Description	results are appended to the caller's history; failed scans
//	@Description	are not recorded.
//	@Tags			Scans
//	@Security		BearerAuth
//	@Accept			mpfd
//	@Produce		json
//	@Param			image	formData	file	true	"Meal photo"
//	@Param			prompt	formData	string	false	"Extra instructions for the model"
//	@Success		200	{object}	scanapi.ScanResponse
//	@Failure		400	{object}	scanapi.APIError	"No image provided"
//	@Failure		401	{object}	scanapi.APIError	"Invalid or missing session token"
//	@Failure		502	{object}	scanapi.APIError	"Vision model unavailable"
//	@Router			/v1/scan [post].
func (h *ScanHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	username := httpx.UsernameFromContext(ctx)
	if username == "" {
		scanapi.ErrInvalidToken.WriteError(w)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxScanUploadBytes)
	if err := r.ParseMultipartForm(maxScanUploadBytes); err != nil {
		scanapi.ErrInvalidRequest.WithDescription("expected a multipart form with an image file").WriteError(w)
		return
	}

	img, err := readImageFile(r, "image")
	if err != nil {
		scanapi.ErrNoImage.WriteError(w)
		return
	}
	prompt := r.PostFormValue("prompt")

	record, err := h.ScanService.Scan(ctx, username, prompt, img)
	switch {
	case errors.Is(err, service.ErrNoImage):
		scanapi.ErrNoImage.WriteError(w)
		return
	case errors.Is(err, service.ErrUpstream):
		scanapi.ErrUpstream.WriteError(w)
		return
	case err != nil:
		log.Error("scan failed", "err", err)
		scanapi.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, scanapi.ScanResponse{
		ID:        record.ID,
		Result:    string(record.Result),
		CreatedAt: record.CreatedAt,
	})
}

// readImageFile pulls the named file out of an already-parsed multipart
// form. A missing or empty part is reported as an error.
func readImageFile(r *http.Request, field string) (vision.Image, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return vision.Image{}, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return vision.Image{}, err
	}
	if len(data) == 0 {
		return vision.Image{}, http.ErrMissingFile
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}

	return vision.Image{Data: data, MIMEType: mimeType}, nil
}
