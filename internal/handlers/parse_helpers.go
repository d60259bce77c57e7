package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/courtspace/court-scheduler/internal/domain/schedule"
	"github.com/courtspace/court-scheduler/internal/dto"
	"github.com/courtspace/court-scheduler/internal/middleware"
)

func currentUserID(c *gin.Context) uint {
	return c.MustGet(middleware.ContextUserID).(uint)
}

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}

// parseDate reads a calendar date in YYYY-MM-DD; the weekday convention
// is Go's (Sunday=0 ... Saturday=6).
func parseDate(s string) (time.Time, error) {
	return time.Parse(dto.DateLayout, s)
}

func parsePagination(c *gin.Context) schedule.Pagination {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	if limit < 0 {
		limit = 0
	}
	if limit > 200 {
		limit = 200
	}
	if offset < 0 {
		offset = 0
	}

	return schedule.Pagination{Limit: limit, Offset: offset}
}
