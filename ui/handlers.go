package ui

import (
	"encoding/base64"
	"fmt"
	"log"
	"net/http"
	"time"

	"bookflow/adapters/excel"
	"bookflow/ports"

	"github.com/gin-gonic/gin"
)

// processRequest is the JSON body accepted by POST /api/process.
type processRequest struct {
	FileContentBase64 string `json:"file_content_base64"`
	APIURL            string `json:"api_url"`
	AuthToken         string `json:"auth_token"`
}

// processHandler runs one batch synchronously and returns the full
// report. Long batches block the request; callers set their own
// timeouts accordingly.
func (s *Server) processHandler(c *gin.Context) {
	var req processRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}

	if req.FileContentBase64 == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file_content_base64 is required"})
		return
	}
	if req.APIURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "api_url is required"})
		return
	}
	if req.AuthToken == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "auth_token is required"})
		return
	}

	data, err := base64.StdEncoding.DecodeString(req.FileContentBase64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file_content_base64 is not valid base64"})
		return
	}

	report := s.service.RunBatch(c.Request.Context(), data, ports.Target{
		Endpoint: req.APIURL,
		Token:    req.AuthToken,
	})

	c.JSON(http.StatusOK, report)
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// templateHandler generates a fresh order template workbook and streams
// it as an XLSX download.
func (s *Server) templateHandler(c *gin.Context) {
	f, err := excel.BuildTemplate(s.cfg.Template.Version)
	if err != nil {
		log.Printf("[Server] Failed to build template: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate template"})
		return
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		log.Printf("[Server] Failed to render template: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate template"})
		return
	}

	filename := fmt.Sprintf("order_template_%s.xlsx", s.cfg.Template.Version)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}
