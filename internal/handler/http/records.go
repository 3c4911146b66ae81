package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-diary-keeper/internal/logger"
	"github.com/MKhiriev/go-diary-keeper/internal/service"
	"github.com/MKhiriev/go-diary-keeper/internal/utils"
	"github.com/MKhiriev/go-diary-keeper/models"
)

// maxMultipartMemory caps how much of a multipart upload is held in memory
// before the multipart reader spills to temporary files.
const maxMultipartMemory = 32 << 20

func (h *Handler) createRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		log.Err(ErrNoIdentityInContext).Send()
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		log.Err(err).Msg("invalid multipart form")
		utils.WriteJSONError(w, "multipart form expected", http.StatusBadRequest)
		return
	}

	draft := models.Record{
		Title:      r.FormValue("title"),
		Content:    r.FormValue("content"),
		Visibility: models.Visibility(r.FormValue("visibility")),
	}

	asset, err := readAssetUpload(r)
	if err != nil {
		log.Err(err).Msg("asset file is missing or unreadable")
		utils.WriteJSONError(w, "asset file is required", http.StatusBadRequest)
		return
	}

	record, err := h.services.RecordService.CreateRecord(ctx, identity, draft, asset)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("record creation failed")
			utils.WriteJSONError(w, http.StatusText(statusFromError(err)), statusFromError(err))
			return
		}
	}

	log.Debug().Str("record_id", record.ID.Hex()).Str("owner_id", identity.ID).Msg("record created")

	utils.WriteJSON(w, record, http.StatusCreated)
}

func (h *Handler) listOwnRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		log.Err(ErrNoIdentityInContext).Send()
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	records, err := h.services.RecordService.ListOwnRecords(ctx, identity)
	if err != nil {
		log.Err(err).Msg("listing own records failed")
		utils.WriteJSONError(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, records, http.StatusOK)
}

func (h *Handler) listPublicRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	records, err := h.services.RecordService.ListPublicRecords(ctx)
	if err != nil {
		log.Err(err).Msg("listing public records failed")
		utils.WriteJSONError(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, records, http.StatusOK)
}

func (h *Handler) getRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		log.Err(ErrNoIdentityInContext).Send()
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	recordID := chi.URLParam(r, "recordID")

	record, err := h.services.RecordService.GetRecord(ctx, identity, recordID)
	if err != nil {
		log.Err(err).Str("record_id", recordID).Msg("fetching record failed")
		utils.WriteJSONError(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, record, http.StatusOK)
}

func (h *Handler) updateRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		log.Err(ErrNoIdentityInContext).Send()
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	recordID := chi.URLParam(r, "recordID")

	var update models.RecordUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	record, err := h.services.RecordService.UpdateRecord(ctx, identity, recordID, update)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		default:
			log.Err(err).Str("record_id", recordID).Msg("record update failed")
			utils.WriteJSONError(w, http.StatusText(statusFromError(err)), statusFromError(err))
			return
		}
	}

	log.Debug().Str("record_id", recordID).Msg("record updated")

	utils.WriteJSON(w, record, http.StatusOK)
}

func (h *Handler) deleteRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		log.Err(ErrNoIdentityInContext).Send()
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	recordID := chi.URLParam(r, "recordID")

	if err := h.services.RecordService.DeleteRecord(ctx, identity, recordID); err != nil {
		log.Err(err).Str("record_id", recordID).Msg("record deletion failed")
		utils.WriteJSONError(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	log.Debug().Str("record_id", recordID).Msg("record deleted")

	utils.WriteJSON(w, models.AckResponse{Message: "record deleted"}, http.StatusOK)
}

// serveAsset streams a stored asset back to the client. The content type is
// sniffed from the payload because asset names carry only the original file
// extension, which clients cannot be trusted to set correctly.
func (h *Handler) serveAsset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	name := chi.URLParam(r, "assetName")

	data, err := h.services.RecordService.LoadAsset(ctx, name)
	if err != nil {
		log.Err(err).Str("asset", name).Msg("asset lookup failed")
		utils.WriteJSONError(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	w.Header().Set("Content-Type", http.DetectContentType(data))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Err(err).Str("asset", name).Msg("writing asset response failed")
	}
}

// readAssetUpload pulls the "asset" file part out of an already-parsed
// multipart form.
func readAssetUpload(r *http.Request) (models.AssetUpload, error) {
	file, header, err := r.FormFile("asset")
	if err != nil {
		return models.AssetUpload{}, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return models.AssetUpload{}, err
	}

	return models.AssetUpload{FileName: header.Filename, Data: data}, nil
}
