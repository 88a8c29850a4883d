// Package api provides the REST API server for mmp-to-MusicXML
package api

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Demez/mmp-to-MusicXML/pkg/converter"
)

// @title mmp-to-MusicXML API
// @version 1.0
// @description API for converting LMMS project files to MusicXML and MIDI
// @host localhost:8080
// @BasePath /api/v1

// StartServer starts the API server on the specified port
func StartServer(port int) error {
	r := gin.Default()

	// CORS middleware
	r.Use(corsMiddleware())

	// Health check
	r.GET("/health", healthCheck)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", healthCheck)
		v1.POST("/convert/mmp2xml", handleMMPToXML)
		v1.POST("/convert/mmp2midi", handleMMPToMIDI)
		v1.GET("/formats", listFormats)
		v1.GET("/instruments", listInstruments)
	}

	// Swagger docs
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r.Run(fmt.Sprintf(":%d", port))
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// healthCheck godoc
// @Summary Health check endpoint
// @Description Returns the health status of the API
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "mmp-to-musicxml",
	})
}

// listFormats godoc
// @Summary List supported formats
// @Description Returns a list of supported file formats
// @Tags info
// @Produce json
// @Success 200 {object} map[string][]string
// @Router /api/v1/formats [get]
func listFormats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"formats":     []string{"mmp", "musicxml", "midi"},
		"conversions": converter.GetSupportedConversions(),
	})
}

// listInstruments godoc
// @Summary List recognized instruments
// @Description Returns the track names that get converted; any other track is skipped
// @Tags info
// @Produce json
// @Success 200 {object} map[string][]string
// @Router /api/v1/instruments [get]
func listInstruments(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"instruments": converter.InstrumentNames(),
	})
}

// handleMMPToXML godoc
// @Summary Convert an LMMS project to MusicXML
// @Description Upload an .mmp file and receive a MusicXML score
// @Tags convert
// @Accept multipart/form-data
// @Produce application/xml
// @Param file formData file true ".mmp file to convert"
// @Param title query string false "Score title"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Router /api/v1/convert/mmp2xml [post]
func handleMMPToXML(c *gin.Context) {
	handleConversion(c, converter.FormatMusicXML)
}

// handleMMPToMIDI godoc
// @Summary Convert an LMMS project to MIDI
// @Description Upload an .mmp file and receive a standard MIDI file
// @Tags convert
// @Accept multipart/form-data
// @Produce application/octet-stream
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Router /api/v1/convert/mmp2midi [post]
func handleMMPToMIDI(c *gin.Context) {
	handleConversion(c, converter.FormatMIDI)
}

func handleConversion(c *gin.Context, target converter.Format) {
	// Get uploaded file
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	defer func() { _ = file.Close() }()

	// Read file content
	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file"})
		return
	}

	conv := converter.New()
	if title := c.Query("title"); title != "" {
		conv.Title = title
	}

	// Perform conversion
	var result *converter.ConversionResult
	var outputExt, contentType string

	switch target {
	case converter.FormatMusicXML:
		result, err = conv.MMPToXML(data)
		outputExt = ".xml"
		contentType = "application/vnd.recordare.musicxml+xml"
	case converter.FormatMIDI:
		result, err = conv.MMPToMIDI(data)
		outputExt = ".mid"
		contentType = "audio/midi"
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported conversion"})
		return
	}

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Generate output filename
	outputName := header.Filename
	if ext := strings.LastIndex(outputName, "."); ext > 0 {
		outputName = outputName[:ext] + outputExt
	} else {
		outputName = "converted" + outputExt
	}

	for _, w := range result.Warnings {
		c.Header("X-Conversion-Warning", w)
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", outputName))
	c.Data(http.StatusOK, contentType, result.Data)
}
