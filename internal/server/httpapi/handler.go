// Package httpapi exposes the registration wizard and the admin surface as a
// JSON HTTP API.
package httpapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rcnapps/ordinand/internal/common"
	"github.com/rcnapps/ordinand/internal/logging"
	"github.com/rcnapps/ordinand/internal/server/schema"
	"github.com/rcnapps/ordinand/internal/server/wizard"
)

// maxAssetRequestBytes caps multipart upload requests. Individual category
// limits (the 5 MiB passport cap) are enforced by the asset service.
const maxAssetRequestBytes = 32 << 20

// DraftStore is the wizard session store the handler drives.
type DraftStore interface {
	Create() wizard.Snapshot
	Update(id string, fn func(d *wizard.Draft) error) error
	Snapshot(id string) (wizard.Snapshot, error)
}

// Submitter performs the one-shot submission of a completed draft.
type Submitter interface {
	Submit(ctx context.Context, sub *wizard.Submission) (string, error)
}

// WizardHandler serves the public registration wizard endpoints.
type WizardHandler struct {
	store      DraftStore
	submitter  Submitter
	paymentURL string
	logger     logging.Logger
}

// NewWizardHandler constructs the wizard handler. paymentURL is the external
// payment page offered after a successful submission.
func NewWizardHandler(store DraftStore, submitter Submitter, paymentURL string, logger logging.Logger) *WizardHandler {
	return &WizardHandler{
		store:      store,
		submitter:  submitter,
		paymentURL: paymentURL,
		logger:     logger.With("module", "wizard_handler"),
	}
}

// Register mounts the wizard routes.
func (h *WizardHandler) Register(r chi.Router) {
	r.Post("/api/registration/sessions", h.HandleCreateSession)
	r.Route("/api/registration/sessions/{sid}", func(r chi.Router) {
		r.Get("/", h.HandleGetSession)
		r.Post("/step-one", h.HandleStepOne)
		r.Post("/step-two", h.HandleStepTwo)
		r.Post("/step-three", h.HandleStepThree)
		r.Post("/back", h.HandleBack)
		r.Post("/history", h.HandleAddHistory)
		r.Put("/history/{id}", h.HandleUpdateHistory)
		r.Delete("/history/{id}", h.HandleRemoveHistory)
		r.Put("/passport", h.HandleSelectPassport)
		r.Delete("/passport", h.HandleRemovePassport)
		r.Put("/document", h.HandleSelectDocument)
		r.Delete("/document", h.HandleRemoveDocument)
		r.Post("/submit", h.HandleSubmit)
		r.Post("/reset", h.HandleReset)
	})
}

// HandleCreateSession opens a fresh draft session.
func (h *WizardHandler) HandleCreateSession(w http.ResponseWriter, r *http.Request) {
	snap := h.store.Create()
	h.logger.Info(r.Context(), "draft session created", "session_id", snap.ID)
	writeJSON(w, http.StatusCreated, snap)
}

// HandleGetSession returns the current wizard state.
func (h *WizardHandler) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	snap, err := h.store.Snapshot(chi.URLParam(r, "sid"))
	if err != nil {
		h.writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// HandleStepOne validates and commits the first step payload.
func (h *WizardHandler) HandleStepOne(w http.ResponseWriter, r *http.Request) {
	var payload schema.StepOne
	if !decodeJSON(w, r, &payload) {
		return
	}
	h.commitStep(w, r, func(d *wizard.Draft) (map[string]string, error) {
		return d.CommitStepOne(&payload)
	})
}

// HandleStepTwo validates and commits the second step payload.
func (h *WizardHandler) HandleStepTwo(w http.ResponseWriter, r *http.Request) {
	var payload schema.StepTwo
	if !decodeJSON(w, r, &payload) {
		return
	}
	h.commitStep(w, r, func(d *wizard.Draft) (map[string]string, error) {
		return d.CommitStepTwo(&payload)
	})
}

// HandleStepThree validates and commits the essay payload.
func (h *WizardHandler) HandleStepThree(w http.ResponseWriter, r *http.Request) {
	var payload schema.StepThree
	if !decodeJSON(w, r, &payload) {
		return
	}
	h.commitStep(w, r, func(d *wizard.Draft) (map[string]string, error) {
		return d.CommitStepThree(&payload)
	})
}

func (h *WizardHandler) commitStep(w http.ResponseWriter, r *http.Request, commit func(d *wizard.Draft) (map[string]string, error)) {
	sid := chi.URLParam(r, "sid")

	var fieldErrs map[string]string
	var snap wizard.Snapshot
	err := h.store.Update(sid, func(d *wizard.Draft) error {
		var commitErr error
		fieldErrs, commitErr = commit(d)
		snap = d.Snapshot()
		return commitErr
	})
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			writeJSON(w, http.StatusUnprocessableEntity, &validationResponse{Errors: fieldErrs})
			return
		}
		h.writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// HandleBack moves the draft one step backwards.
func (h *WizardHandler) HandleBack(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(d *wizard.Draft) error { return d.Back() })
}

// HandleAddHistory appends a blank spiritual-history entry.
func (h *WizardHandler) HandleAddHistory(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(d *wizard.Draft) error {
		d.AddHistory()
		return nil
	})
}

// HandleUpdateHistory replaces the text of one history entry.
func (h *WizardHandler) HandleUpdateHistory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeNotice(w, http.StatusBadRequest, destructive("Bad request", "Invalid history entry id."))
		return
	}
	var body struct {
		Text string `json:"text"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}
	h.mutate(w, r, func(d *wizard.Draft) error {
		d.UpdateHistory(id, body.Text)
		return nil
	})
}

// HandleRemoveHistory deletes one history entry. Removing the last remaining
// entry is a no-op.
func (h *WizardHandler) HandleRemoveHistory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeNotice(w, http.StatusBadRequest, destructive("Bad request", "Invalid history entry id."))
		return
	}
	h.mutate(w, r, func(d *wizard.Draft) error {
		d.RemoveHistory(id)
		return nil
	})
}

// HandleSelectPassport attaches a passport photo to the draft.
func (h *WizardHandler) HandleSelectPassport(w http.ResponseWriter, r *http.Request) {
	asset, ok := h.readAsset(w, r)
	if !ok {
		return
	}
	h.mutate(w, r, func(d *wizard.Draft) error { return d.SelectPassport(asset) })
}

// HandleRemovePassport discards the selected passport photo.
func (h *WizardHandler) HandleRemovePassport(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(d *wizard.Draft) error {
		d.RemovePassport()
		return nil
	})
}

// HandleSelectDocument attaches the supporting document to the draft.
func (h *WizardHandler) HandleSelectDocument(w http.ResponseWriter, r *http.Request) {
	asset, ok := h.readAsset(w, r)
	if !ok {
		return
	}
	h.mutate(w, r, func(d *wizard.Draft) error { return d.SelectDocument(asset) })
}

// HandleRemoveDocument discards the selected supporting document.
func (h *WizardHandler) HandleRemoveDocument(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(d *wizard.Draft) error {
		d.RemoveDocument()
		return nil
	})
}

type submitResponse struct {
	ID      string  `json:"id"`
	Notice  *Notice `json:"notice"`
	Payment payment `json:"payment"`
}

type payment struct {
	Description string `json:"description"`
	URL         string `json:"url"`
}

// HandleSubmit runs one submission attempt: the draft is copied out under the
// store lock, uploads and the insert run outside it, and only a successful
// attempt moves the draft to the submitted state. A failed attempt leaves the
// draft on the last step with every committed payload intact for retry.
func (h *WizardHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	sid := chi.URLParam(r, "sid")

	var sub *wizard.Submission
	err := h.store.Update(sid, func(d *wizard.Draft) error {
		var beginErr error
		sub, beginErr = d.BeginSubmission()
		return beginErr
	})
	if err != nil {
		h.writeStoreError(w, r, err)
		return
	}

	id, err := h.submitter.Submit(r.Context(), sub)
	if err != nil {
		h.logger.Error(r.Context(), "submission failed", "session_id", sid, "error", err)
		status := http.StatusInternalServerError
		if errors.Is(err, common.ErrorUploadFailed) {
			status = http.StatusBadGateway
		}
		writeNotice(w, status, destructive("Registration failed",
			"There was an error submitting your registration. Please try again."))
		return
	}

	_ = h.store.Update(sid, func(d *wizard.Draft) error {
		d.CompleteSubmission()
		return nil
	})

	writeJSON(w, http.StatusCreated, &submitResponse{
		ID: id,
		Notice: notice("Registration submitted",
			"You have successfully registered for the induction programme."),
		Payment: payment{
			Description: "To complete your registration, please proceed to make a payment.",
			URL:         h.paymentURL,
		},
	})
}

// HandleReset discards everything and returns the draft to a blank step one.
func (h *WizardHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(d *wizard.Draft) error {
		d.Reset()
		return nil
	})
}

func (h *WizardHandler) mutate(w http.ResponseWriter, r *http.Request, fn func(d *wizard.Draft) error) {
	sid := chi.URLParam(r, "sid")

	var snap wizard.Snapshot
	err := h.store.Update(sid, func(d *wizard.Draft) error {
		if err := fn(d); err != nil {
			return err
		}
		snap = d.Snapshot()
		return nil
	})
	if err != nil {
		h.writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (h *WizardHandler) readAsset(w http.ResponseWriter, r *http.Request) (*wizard.Asset, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxAssetRequestBytes)
	if err := r.ParseMultipartForm(maxAssetRequestBytes); err != nil {
		writeNotice(w, http.StatusRequestEntityTooLarge, destructive("Upload failed", "The file is too large."))
		return nil, false
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeNotice(w, http.StatusBadRequest, destructive("Upload failed", "No file was provided."))
		return nil, false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error(r.Context(), "reading uploaded file failed", "error", err)
		writeNotice(w, http.StatusBadRequest, destructive("Upload failed", "The file could not be read."))
		return nil, false
	}

	return &wizard.Asset{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, true
}

func (h *WizardHandler) writeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrorSessionNotFound):
		writeNotice(w, http.StatusNotFound, destructive("Session expired",
			"Your registration session was not found. Please start again."))
	case errors.Is(err, common.ErrorWrongStep):
		writeNotice(w, http.StatusConflict, destructive("Not allowed",
			"This action is not available at the current step."))
	default:
		h.logger.Error(r.Context(), "wizard action failed", "error", err)
		writeNotice(w, http.StatusInternalServerError, destructive("Something went wrong",
			"Please try again."))
	}
}
