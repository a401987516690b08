package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rsked-radio/rcald/internal/http/api"
	"github.com/rsked-radio/rcald/internal/http/api/packets"
	"github.com/rsked-radio/rcald/internal/library"
)

type LibraryController struct {
	loader *library.Loader
}

func NewLibraryController(loader *library.Loader) *LibraryController {
	return &LibraryController{loader: loader}
}

func LibraryModule(loader *library.Loader) api.Module {
	ctl := NewLibraryController(loader)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/library", ctl.getLibrary)
		c.GET("/library/default", api.ResolveEndpoint(ctl.getDefaultResource))
	})
}

// getLibrary serves the host library catalog the editor builds its source
// dialogs from.
func (l *LibraryController) getLibrary(ctx *gin.Context) {
	raw, err := l.loader.Raw(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "host library unavailable"})
		return
	}
	ctx.Data(http.StatusOK, "application/json", raw)
}

// getDefaultResource serves the recording the source dialog preselects when
// the user adds a new file or directory source.
func (l *LibraryController) getDefaultResource(ctx *gin.Context) (any, *api.APIError) {
	cat, err := l.loader.Load(ctx.Request.Context())
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "host library unavailable"}
	}
	artist, album, track, encoding, err := library.DefaultResource(cat)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "host library is empty"}
	}
	return packets.DefaultResourceResponse{
		Artist:   artist,
		Album:    album,
		Track:    track,
		Encoding: encoding,
	}, nil
}
