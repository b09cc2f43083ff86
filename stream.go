package main

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Zachkp/portfolio/internal/typewriter"
)

// Event name carrying the display text on the typewriter stream.
const textEvent = "text"

func (s *server) typewriterInfo(c *gin.Context) {
	timing := s.cfg.Typewriter.Timing()
	cycler, err := typewriter.NewWithTiming(s.profile.Taglines, timing)
	if err != nil {
		s.log.Error().Err(err).Msg("typewriter_init")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "typewriter unavailable"})
		return
	}
	timing = cycler.Timing()

	c.JSON(http.StatusOK, gin.H{
		"phrases":            cycler.Phrases(),
		"type_interval_ms":   timing.TypeInterval.Milliseconds(),
		"delete_interval_ms": timing.DeleteInterval.Milliseconds(),
		"pause_ms":           timing.Pause.Milliseconds(),
	})
}

// typewriterStream animates the taglines for a single client. The animator
// belongs to this request and is stopped before the handler returns.
func (s *server) typewriterStream(c *gin.Context) {
	cycler, err := typewriter.NewWithTiming(s.profile.Taglines, s.cfg.Typewriter.Timing())
	if err != nil {
		s.log.Error().Err(err).Msg("typewriter_init")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "typewriter unavailable"})
		return
	}

	// Frames coalesce: a slow client gets the latest text, not a backlog.
	changed := make(chan struct{}, 1)
	anim := typewriter.NewAnimator(cycler, typewriter.WithOnChange(func(string) {
		select {
		case changed <- struct{}{}:
		default:
		}
	}))

	log := s.log.With().Str("stream_id", uuid.NewString()).Logger()
	s.streams.Add(1)
	log.Debug().Msg("typewriter_stream_open")
	defer func() {
		anim.Stop()
		s.streams.Add(-1)
		log.Debug().Msg("typewriter_stream_closed")
	}()

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	c.SSEvent(textEvent, anim.Text())
	c.Writer.Flush()
	anim.Start()

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case <-changed:
			c.SSEvent(textEvent, anim.Text())
			return true
		}
	})
}
