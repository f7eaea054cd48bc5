package api

import "github.com/example/image-tagger/api/apitype"

type Topic string

const (
	ImageRequestNext     = Topic("image-request-next")
	ImageRequestPrevious = Topic("image-request-previous")

	ImageCurrentUpdated = Topic("image-current-updated")
	ImageViewerClosed   = Topic("image-viewer-closed")
	ImagesUpdated       = Topic("images-updated")
	ImageShowOnly       = Topic("image-show-only")

	CategoriesUpdated   = Topic("categories-updated")
	CategoryImageUpdate = Topic("category-image-update")

	HotkeysUpdated = Topic("hotkeys-updated")

	DirectoryChanged = Topic("directory-changed")
	ShowError        = Topic("show-error")
)

type Sender interface {
	SendToTopic(topic Topic)
	SendCommandToTopic(topic Topic, command apitype.Command)
	SendError(message string, err error)
}

type ErrorCommand struct {
	Message string

	apitype.NotThrottled
}
