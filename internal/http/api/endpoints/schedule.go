package endpoints

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/rsked-radio/rcald/internal/db"
	"github.com/rsked-radio/rcald/internal/http/api"
	"github.com/rsked-radio/rcald/internal/http/api/packets"
	"github.com/rsked-radio/rcald/internal/notify"
	"github.com/rsked-radio/rcald/internal/schedule"
	"github.com/rsked-radio/rcald/internal/store"
)

type ScheduleController struct {
	files    *store.FileStore
	archived bool // record accepted versions in Postgres
	notifier *notify.Publisher
}

func NewScheduleController(files *store.FileStore, archived bool, notifier *notify.Publisher) *ScheduleController {
	return &ScheduleController{files: files, archived: archived, notifier: notifier}
}

func ScheduleModule(files *store.FileStore, archived bool, notifier *notify.Publisher) api.Module {
	ctl := NewScheduleController(files, archived, notifier)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/schedule", ctl.getSchedule)
		c.GET("/schedule/versions", api.ResolveEndpoint(ctl.listVersions))
		c.POST("/schedule", ctl.saveSchedule)

		if ctl.archived {
			c.GET("/schedule/archive", api.ResolveEndpoint(ctl.listArchive))
			c.GET("/schedule/archive/:version", ctl.getArchived)
		}
	})
}

// getSchedule serves the requested schedule version as raw JSON. Default is
// the canonical current file; an absent file yields "{}" so a fresh install
// starts from an empty editor.
func (s *ScheduleController) getSchedule(ctx *gin.Context) {
	version := ctx.Query("version")
	if version == "" || version == "current" {
		ctx.Data(http.StatusOK, "application/json", s.files.ReadCurrent())
		return
	}
	raw, err := s.files.ReadVersion(version)
	if err != nil {
		ctx.Data(http.StatusOK, "application/json", []byte(`{"error":"version unavailable"}`))
		return
	}
	ctx.Data(http.StatusOK, "application/json", raw)
}

func (s *ScheduleController) listVersions(ctx *gin.Context) (any, *api.APIError) {
	versions, err := s.files.ListVersions()
	if err != nil {
		return packets.VersionsResponse{
			Status:   "error",
			Versions: []string{},
			Message:  "schedule directory is not readable",
		}, nil
	}
	if versions == nil {
		versions = []string{}
	}
	return packets.VersionsResponse{Status: "ok", Versions: versions}, nil
}

// saveSchedule accepts a schedule document posted under the "schedule" form
// field, validates it by running a full import, and installs it with backup
// rotation. The reply is a single plain-text line: "accepted, version <v>"
// or "ERROR <message>", which the editor shows to the user verbatim.
func (s *ScheduleController) saveSchedule(ctx *gin.Context) {
	raw := ctx.PostForm("schedule")
	if raw == "" {
		ctx.String(http.StatusOK, "ERROR no schedule posted")
		return
	}
	version, err := schedule.ValidateDocument([]byte(raw))
	if err != nil {
		log.Warn().Err(err).Msg("rejected posted schedule")
		ctx.String(http.StatusOK, "ERROR %s", err.Error())
		return
	}
	if err := s.files.Save([]byte(raw)); err != nil {
		ctx.String(http.StatusOK, "ERROR saving schedule")
		return
	}
	if s.archived {
		if _, err := db.InsertScheduleVersion(version, []byte(raw)); err != nil {
			// archive is history, not the install path; the save stands
			log.Warn().Err(err).Str("version", version).Msg("could not archive schedule version")
		}
	}
	s.notifier.ScheduleUpdated(version)
	ctx.String(http.StatusOK, "accepted, version %s", version)
}

func (s *ScheduleController) listArchive(ctx *gin.Context) (any, *api.APIError) {
	entries, err := db.ListScheduleVersions(50)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list archive"}
	}
	response := make([]packets.ArchiveEntryResponse, 0, len(entries))
	for _, e := range entries {
		response = append(response, packets.ArchiveEntryResponse{
			ID:         e.ID,
			Version:    e.Version,
			ReceivedAt: e.ReceivedAt.Format(time.RFC3339),
		})
	}
	return response, nil
}

func (s *ScheduleController) getArchived(ctx *gin.Context) {
	entry, err := db.GetScheduleVersion(ctx.Param("version"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "version not archived"})
		return
	}
	ctx.Data(http.StatusOK, "application/json", entry.Document)
}
