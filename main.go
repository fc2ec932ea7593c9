package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"payoff-viz/controllers"
	"payoff-viz/services"
)

func main() {
	// .env is optional; fall back to the process environment
	_ = godotenv.Load()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	if level, err := logrus.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		logger.SetLevel(level)
	}

	calc := services.NewPayoffCalculator()
	curves := services.NewCurveBuilder(calc)
	chart := services.NewChartService(calc, curves)
	prompts := services.NewPromptService(os.Stdin, os.Stdout)

	input, err := prompts.Collect()
	if err != nil {
		logger.Fatalf("Failed to read position inputs: %v", err)
	}

	summary := calc.Summarize(input.CurrentPrice, input.Position)
	prompts.PrintSummary(input, summary)

	var page bytes.Buffer
	if err := chart.Render(&page, input.CurrentPrice, input.Position); err != nil {
		logger.Fatalf("Failed to render payoff diagram: %v", err)
	}

	// optional copy on disk; the default display path is the browser
	if path := os.Getenv("CHART_FILE"); path != "" {
		if err := os.WriteFile(path, page.Bytes(), 0644); err != nil {
			logger.Fatalf("Failed to save diagram to %s: %v", path, err)
		}
		logger.WithField("path", path).Info("Saved payoff diagram")
	}

	serveDiagram(logger, getEnv("LISTEN_ADDR", "127.0.0.1:8739"), page.Bytes())
}

// serveDiagram displays the rendered page through the host's default browser:
// it serves the one-shot diagram on a loopback address, opens it, and blocks
// until the process is interrupted.
func serveDiagram(logger *logrus.Logger, addr string, page []byte) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	controller := controllers.NewDiagramController(page)
	router.GET("/", controller.HandleDiagram)

	url := fmt.Sprintf("http://%s/", addr)
	logger.WithField("url", url).Info("Displaying payoff diagram; press Ctrl-C to exit")

	if os.Getenv("NO_BROWSER") == "" {
		go func() {
			// give the listener a moment to come up
			time.Sleep(200 * time.Millisecond)
			if err := openBrowser(url); err != nil {
				logger.WithError(err).Warn("Could not open browser; open the URL manually")
			}
		}()
	}

	if err := router.Run(addr); err != nil {
		logger.Fatalf("Failed to serve diagram: %v", err)
	}
}

// openBrowser asks the host environment's default viewer to open url.
func openBrowser(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
