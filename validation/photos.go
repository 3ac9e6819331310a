package validation

// PhotoUploadResponse is the shape returned after a photo upload.
type PhotoUploadResponse struct {
	ID       int64  `json:"id" validate:"required,gt=0"`
	DeviceID int64  `json:"device_id" validate:"required,gt=0"`
	URL      string `json:"url" validate:"required,url"`
	Position int32  `json:"position" validate:"gte=0"`
}

// PhotoIndexUpdateRequest reorders a photo within a device's gallery.
// Index is zero-based.
type PhotoIndexUpdateRequest struct {
	PhotoID int64 `json:"photo_id" validate:"required,gt=0"`
	Index   int32 `json:"index" validate:"gte=0"`
}
