package videos

import (
	"encoding/json"
	"log"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/CampusStream/CS-Backend/internal/access"
	"github.com/CampusStream/CS-Backend/internal/db"
	"github.com/CampusStream/CS-Backend/internal/httpx"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ListHandler returns the caller's videos, never anyone else's.
func ListHandler(w http.ResponseWriter, r *http.Request) {
	caller, err := access.Require(r.Context())
	if err != nil {
		httpx.WriteError(w, err)
		return
	}

	owned, err := ListByOwner(caller.UserID)
	if err != nil {
		httpx.WriteError(w, httpx.Internal(err))
		return
	}
	httpx.Success(w, http.StatusOK, ToResponses(owned))
}

// GetHandler returns one of the caller's videos. A record owned by someone
// else reads as not found, so existence is never leaked.
func GetHandler(w http.ResponseWriter, r *http.Request) {
	caller, err := access.Require(r.Context())
	if err != nil {
		httpx.WriteError(w, err)
		return
	}

	video, found, err := ByID(chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteError(w, httpx.Internal(err))
		return
	}
	if !found || video.OwnerID != caller.UserID {
		httpx.WriteError(w, httpx.NotFound("Video not found"))
		return
	}
	httpx.Success(w, http.StatusOK, ToResponse(*video))
}

// UploadHandler accepts a multipart upload {title, description?, videos}.
// The owner is always the resolved session user; any owner value in the
// payload is ignored. Nothing is persisted until the payload validates.
func UploadHandler(w http.ResponseWriter, r *http.Request) {
	caller, err := access.Require(r.Context())
	if err != nil {
		httpx.WriteError(w, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, cfg.Upload.MaxBytes)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		httpx.WriteError(w, httpx.ValidationMsg("Invalid multipart payload"))
		return
	}

	title := strings.TrimSpace(r.FormValue("title"))
	description := r.FormValue("description")

	fields := map[string]string{}
	if title == "" {
		fields["title"] = "Title is required"
	}
	if len(title) > 100 {
		fields["title"] = "Title must be at most 100 characters"
	}

	file, header, err := r.FormFile("videos")
	if err != nil {
		// Accept "file" as an alternative field name.
		file, header, err = r.FormFile("file")
	}
	if err != nil {
		fields["videos"] = "Video file is required"
		httpx.WriteError(w, httpx.Validation(fields))
		return
	}
	defer file.Close()

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(header.Filename)), ".")
	if !cfg.ExtensionAllowed(ext) {
		fields["videos"] = "File extension ." + ext + " is not allowed"
	}
	if len(fields) > 0 {
		httpx.WriteError(w, httpx.Validation(fields))
		return
	}

	key := uuid.New().String() + "." + ext
	contentType := mime.TypeByExtension("." + ext)

	ref, err := blobStore.Save(r.Context(), key, file, header.Size, contentType)
	if err != nil {
		httpx.WriteError(w, httpx.Internal(err))
		return
	}

	video := Video{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		FileRef:     ref,
		OwnerID:     caller.UserID,
	}
	if err := db.DB.Create(&video).Error; err != nil {
		// Keep storage and database consistent: no orphaned blobs.
		blobStore.Remove(r.Context(), key)
		httpx.WriteError(w, httpx.Internal(err))
		return
	}

	httpx.SuccessMsg(w, http.StatusCreated, "Video uploaded successfully", ToResponse(video))
}

type updateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// UpdateHandler changes title or description. Only the owner may modify a
// video; the owner itself is immutable.
func UpdateHandler(w http.ResponseWriter, r *http.Request) {
	caller, err := access.Require(r.Context())
	if err != nil {
		httpx.WriteError(w, err)
		return
	}

	video, found, err := ByID(chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteError(w, httpx.Internal(err))
		return
	}
	if !found {
		httpx.WriteError(w, httpx.NotFound("Video not found"))
		return
	}
	if err := access.RequireOwner(caller, video.OwnerID); err != nil {
		httpx.WriteError(w, err)
		return
	}

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, httpx.ValidationMsg("Invalid request format"))
		return
	}

	updates := map[string]any{}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" || len(title) > 100 {
			httpx.WriteError(w, httpx.Validation(map[string]string{
				"title": "Title must be between 1 and 100 characters",
			}))
			return
		}
		updates["title"] = title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if len(updates) == 0 {
		httpx.WriteError(w, httpx.ValidationMsg("Nothing to update"))
		return
	}

	if err := db.DB.Model(video).Updates(updates).Error; err != nil {
		httpx.WriteError(w, httpx.Internal(err))
		return
	}
	httpx.SuccessMsg(w, http.StatusOK, "Video updated successfully", ToResponse(*video))
}

// DeleteHandler removes the caller's video and its stored payload.
func DeleteHandler(w http.ResponseWriter, r *http.Request) {
	caller, err := access.Require(r.Context())
	if err != nil {
		httpx.WriteError(w, err)
		return
	}

	video, found, err := ByID(chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteError(w, httpx.Internal(err))
		return
	}
	if !found {
		httpx.WriteError(w, httpx.NotFound("Video not found"))
		return
	}
	if err := access.RequireOwner(caller, video.OwnerID); err != nil {
		httpx.WriteError(w, err)
		return
	}

	if err := db.DB.Delete(video).Error; err != nil {
		httpx.WriteError(w, httpx.Internal(err))
		return
	}
	if err := blobStore.Remove(r.Context(), filepath.Base(video.FileRef)); err != nil {
		// The record is gone; a failed blob cleanup is not surfaced to
		// the client.
		log.Printf("failed to remove blob for video %s: %v", video.ID, err)
	}

	httpx.SuccessMsg(w, http.StatusOK, "Video deleted", nil)
}
