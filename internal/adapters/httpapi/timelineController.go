package httpapi

import (
	"net/http"
	"strconv"

	"snapline/internal/adapters/httpapi/middleware"
	"snapline/internal/core/user"
	postPort "snapline/internal/ports/post"

	"github.com/gin-gonic/gin"
)

type TimelineController struct {
	tc TimelineUseCase
	uc UserUseCase
}

func NewTimelineController(tc TimelineUseCase, uc UserUseCase) *TimelineController {
	return &TimelineController{tc: tc, uc: uc}
}

func (ctl *TimelineController) GetTimeline(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no session"})
		return
	}

	posts := ctl.tc.FetchTimeline(c.Request.Context(), sess)
	c.JSON(http.StatusOK, gin.H{"timeline": postPort.NewPostDTOs(posts)})
}

// GetUserPosts serves the paginated profile view over the ordered single-user
// post list.
func (ctl *TimelineController) GetUserPosts(c *gin.Context) {
	profile, err := ctl.uc.ByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	startStr := c.DefaultQuery("start", "0")
	limitStr := c.DefaultQuery("limit", "20")

	start, err := strconv.ParseInt(startStr, 10, 64)
	if err != nil || start < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start"})
		return
	}
	limit, err := strconv.ParseInt(limitStr, 10, 64)
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}

	posts := ctl.tc.PostsForUser(c.Request.Context(), user.User{
		Identifier: profile.Identifier,
		Username:   profile.Username,
	})

	if start > int64(len(posts)) {
		start = int64(len(posts))
	}
	end := start + limit
	if end > int64(len(posts)) {
		end = int64(len(posts))
	}

	c.JSON(http.StatusOK, gin.H{"posts": postPort.NewPostDTOs(posts[start:end])})
}
