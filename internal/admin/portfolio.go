package admin

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/bornholm/jis/internal/media"
	"github.com/bornholm/jis/internal/store"
	"github.com/bornholm/jis/pkg/log"
	"github.com/pkg/errors"
)

const (
	maxFormMemory   = 1 << 20
	maxFormOverhead = 1 << 20
)

func (h *Handler) serveCreatePortfolio(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusOK, h.newPortfolioFormData(r, PortfolioForm{}, ""))
}

func (h *Handler) handleCreatePortfolio(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, media.MaxImageSize+maxFormOverhead)

	if err := r.ParseMultipartForm(maxFormMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	form := PortfolioForm{
		Title:       strings.TrimSpace(r.PostForm.Get("title")),
		Client:      strings.TrimSpace(r.PostForm.Get("client")),
		URL:         strings.TrimSpace(r.PostForm.Get("url")),
		ImageURL:    strings.TrimSpace(r.PostForm.Get("imageUrl")),
		Description: strings.TrimSpace(r.PostForm.Get("description")),
	}

	if message := validatePortfolioForm(form); message != "" {
		render(w, r, http.StatusBadRequest, h.newPortfolioFormData(r, form, message))
		return
	}

	imageURL, message, err := h.saveUploadedImage(r)
	if err != nil {
		slog.ErrorContext(ctx, "could not save uploaded image", log.Error(errors.WithStack(err)))
		render(w, r, http.StatusInternalServerError, h.newPortfolioFormData(r, form, "The image could not be saved."))
		return
	}

	if message != "" {
		render(w, r, http.StatusBadRequest, h.newPortfolioFormData(r, form, message))
		return
	}

	if imageURL != "" {
		form.ImageURL = imageURL
	}

	item := &store.PortfolioItem{
		Title:       form.Title,
		Client:      form.Client,
		URL:         form.URL,
		ImageURL:    form.ImageURL,
		Description: form.Description,
		AuthorID:    authorID(r),
	}

	if err := h.store.CreatePortfolioItem(ctx, item); err != nil {
		slog.ErrorContext(ctx, "could not create portfolio item", log.Error(errors.WithStack(err)))
		render(w, r, http.StatusInternalServerError, h.newPortfolioFormData(r, form, "The portfolio item could not be saved."))
		return
	}

	slog.InfoContext(ctx, "portfolio item created", slog.String("itemID", item.PublicID))

	http.Redirect(w, r, "/portfolio", http.StatusSeeOther)
}

// saveUploadedImage stores the optional "image" file and returns its public
// URL. A non empty message reports an invalid upload.
func (h *Handler) saveUploadedImage(r *http.Request) (string, string, error) {
	if !h.uploadsEnabled() || r.MultipartForm == nil {
		return "", "", nil
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", "", nil
		}

		return "", "", errors.WithStack(err)
	}

	defer file.Close()

	key, err := media.SaveImage(r.Context(), h.media, "portfolio", file, header.Size)
	switch {
	case errors.Is(err, media.ErrImageTooLarge):
		return "", "The image must not exceed 5 MiB.", nil
	case errors.Is(err, media.ErrUnsupportedImage):
		return "", "The image must be a PNG, JPEG, GIF or WebP file.", nil
	case err != nil:
		return "", "", errors.WithStack(err)
	}

	return h.mediaURLs.URL(key), "", nil
}

func (h *Handler) uploadsEnabled() bool {
	return h.media != nil && h.mediaURLs != nil
}

func validatePortfolioForm(form PortfolioForm) string {
	if form.Title == "" {
		return "A title is required."
	}

	if !isWebURL(form.URL) {
		return "The project URL must be an http(s) address."
	}

	if !isWebURL(form.ImageURL) {
		return "The image URL must be an http(s) address."
	}

	return ""
}

// isWebURL accepts empty values and absolute http(s) URLs.
func isWebURL(raw string) bool {
	if raw == "" {
		return true
	}

	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func (h *Handler) newPortfolioFormData(r *http.Request, form PortfolioForm, message string) PortfolioFormTemplateData {
	return PortfolioFormTemplateData{
		PageTemplateData: h.navbar.Page(r, "Create Portfolio"),
		Path:             "create-portfolio",
		FormAction:       h.prefix + "/create-portfolio",
		UploadsEnabled:   h.uploadsEnabled(),
		Form:             form,
		ErrorMessage:     message,
	}
}
