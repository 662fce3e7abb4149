package httpapi

import (
	"io"
	"net/http"

	"snapline/internal/adapters/httpapi/middleware"
	postPort "snapline/internal/ports/post"

	"github.com/gin-gonic/gin"
)

type PostController struct{ pc PostUseCase }

func NewPostController(pc PostUseCase) *PostController { return &PostController{pc: pc} }

func (ctl *PostController) CreatePost(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no session"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read image"})
		return
	}
	defer file.Close()
	image, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read image"})
		return
	}

	ok, created := ctl.pc.CreatePost(c.Request.Context(), sess, image, c.PostForm("caption"))
	if !ok {
		c.JSON(http.StatusBadGateway, gin.H{"error": "image upload failed"})
		return
	}
	c.JSON(http.StatusCreated, postPort.NewPostDTO(*created))
}

func (ctl *PostController) DeletePost(c *gin.Context) {
	p := ctl.pc.PostByIdentifier(c.Request.Context(), c.Param("id"))
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	ctl.pc.DeletePost(c.Request.Context(), *p)
	c.Status(http.StatusNoContent)
}

func (ctl *PostController) AddComment(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no session"})
		return
	}

	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	p := ctl.pc.PostByIdentifier(c.Request.Context(), c.Param("id"))
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	ok, refreshed := ctl.pc.AddComment(c.Request.Context(), sess, req.Text, p)
	if !ok || refreshed == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not add comment"})
		return
	}
	c.JSON(http.StatusCreated, postPort.NewPostDTO(*refreshed))
}

func (ctl *PostController) AddLike(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no session"})
		return
	}

	p := ctl.pc.PostByIdentifier(c.Request.Context(), c.Param("id"))
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	ok, refreshed := ctl.pc.AddLike(c.Request.Context(), sess, p)
	if !ok || refreshed == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not add like"})
		return
	}
	c.JSON(http.StatusCreated, postPort.NewPostDTO(*refreshed))
}

func (ctl *PostController) DeleteComment(c *gin.Context) {
	comment, err := ctl.pc.CommentByIdentifier(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
		return
	}

	refreshed := ctl.pc.DeleteComment(c.Request.Context(), *comment)
	if refreshed == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, postPort.NewPostDTO(*refreshed))
}

func (ctl *PostController) DeleteLike(c *gin.Context) {
	like, err := ctl.pc.LikeByIdentifier(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "like not found"})
		return
	}

	refreshed := ctl.pc.DeleteLike(c.Request.Context(), *like)
	if refreshed == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, postPort.NewPostDTO(*refreshed))
}
