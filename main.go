package main

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"strconv"

	"github.com/tr4cks/lights/lights"
	"github.com/tr4cks/lights/lights/backlight"
	"github.com/tr4cks/lights/lights/notify"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFilePath, "config", path.Join("/etc", fmt.Sprintf("%s.d", appName), "config.yaml"), "YAML configuration file")
}

const appName = "lights"

var (
	configFilePath string
	rootCmd        = &cobra.Command{
		Use:     appName,
		Short:   "Daemon arbitrating the device's light indicators",
		Version: "1.0.0",
		Args:    cobra.NoArgs,
		Run:     run,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
)

type Config struct {
	Username  string `validate:"required_with=Password"`
	Password  string `validate:"required_with=Username"`
	Backlight map[string]interface{}
	Led       map[string]interface{}
}

func parseYAMLFile(filePath string) (*Config, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer file.Close()
	config := Config{}
	decoder := yaml.NewDecoder(file)
	err = decoder.Decode(&config)
	if err != nil {
		return nil, fmt.Errorf("error decoding YAML file %q: %w", filePath, err)
	}
	return &config, nil
}

func parseConfigFile(filePath string) *Config {
	config, err := parseYAMLFile(filePath)
	if errors.Is(err, os.ErrNotExist) {
		// No config file means default device paths and no authentication.
		config = &Config{}
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse YAML file %q: %s\n", filePath, err)
		os.Exit(1)
	}

	validate := validator.New()
	err = validate.Struct(config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error during configuration validation: %s\n", err)
		os.Exit(1)
	}

	return config
}

func newLogger(scope string) zerolog.Logger {
	var outputWriter io.Writer = os.Stderr
	if gin.Mode() != "release" {
		outputWriter = zerolog.ConsoleWriter{Out: os.Stderr}
	}
	return zerolog.
		New(outputWriter).
		With().
		Timestamp().
		Str("scope", scope).
		Logger()
}

func createController(config *Config) *lights.Controller {
	notification := notify.New(newLogger("notify"))
	err := notification.Init(config.Led)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error during notification handler initialization: %s\n", err)
		os.Exit(1)
	}

	lcd := backlight.New(newLogger("backlight"))
	err = lcd.Init(config.Backlight)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error during backlight handler initialization: %s\n", err)
		os.Exit(1)
	}

	return lights.NewController(notification, lcd, newLogger("controller"))
}

func run(cmd *cobra.Command, args []string) {
	config := parseConfigFile(configFilePath)
	controller := createController(config)

	runServer(config, controller)
}

//go:embed index.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

func newRouter(config *Config, controller *lights.Controller, logger zerolog.Logger) *gin.Engine {
	// Configure Gin
	router := gin.Default()
	router.SetTrustedProxies(nil)
	html := template.Must(template.ParseFS(templateFS, "index.html"))
	router.SetHTMLTemplate(html)

	// Serve static folder
	staticSubtreeFS, err := fs.Sub(staticFS, "static")
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to mount static subtree")
	}
	router.StaticFS("/static", http.FS(staticSubtreeFS))

	withTypes := router.Group("/", SupportedTypesMiddleware(controller))
	{
		// GET index.html
		withTypes.GET("/", func(c *gin.Context) {
			c.HTML(http.StatusOK, "index.html", gin.H{
				"types": c.MustGet("types"),
			})
		})

		withTypes.GET("/api/lights", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"types": c.MustGet("types"),
			})
		})
	}

	setLight := func(c *gin.Context) {
		var state lights.State
		err := c.ShouldBindJSON(&state)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status": "ko",
				"error":  err.Error(),
			})
			return
		}

		err = controller.SetLight(lights.Type(c.Param("type")), state)
		if err != nil {
			logger.Error().Err(err).Str("type", c.Param("type")).Msg("Failed to set light")
			c.JSON(http.StatusNotFound, gin.H{
				"status": "ko",
				"error":  "unsupported light type",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	}

	if config.Username != "" {
		router.POST("/api/lights/:type", gin.BasicAuth(gin.Accounts{config.Username: config.Password}), setLight)
	} else {
		router.POST("/api/lights/:type", setLight)
	}

	return router
}

func runServer(config *Config, controller *lights.Controller) {
	router := newRouter(config, controller, newLogger("http"))
	router.Run()
}

func init() {
	setCmd.Flags().StringVar(&setColor, "color", "0xFF000000", "ARGB color, e.g. 0xFFFF0000")
	setCmd.Flags().StringVar(&setFlash, "flash", "none", "flash mode (none or timed)")
	setCmd.Flags().Uint32Var(&setFlashOn, "on", 0, "flash on time in milliseconds")
	setCmd.Flags().Uint32Var(&setFlashOff, "off", 0, "flash off time in milliseconds")
	rootCmd.AddCommand(setCmd, offCmd, typesCmd)
}

var (
	setColor    string
	setFlash    string
	setFlashOn  uint32
	setFlashOff uint32

	setCmd = &cobra.Command{
		Use:   "set <type>",
		Short: "Set a light state directly on the hardware",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			config := parseConfigFile(configFilePath)
			controller := createController(config)

			color, err := strconv.ParseUint(setColor, 0, 32)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Invalid color %q: %s\n", setColor, err)
				os.Exit(1)
			}

			flash := lights.Flash(setFlash)
			if flash != lights.FlashNone && flash != lights.FlashTimed {
				fmt.Fprintf(os.Stderr, "Invalid flash mode %q (expected none or timed)\n", setFlash)
				os.Exit(1)
			}

			state := lights.State{
				Color:      uint32(color),
				Flash:      flash,
				FlashOnMs:  setFlashOn,
				FlashOffMs: setFlashOff,
			}

			err = controller.SetLight(lights.Type(args[0]), state)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to set light %q: %s\n", args[0], err)
				os.Exit(1)
			}
		},
	}
	offCmd = &cobra.Command{
		Use:   "off <type>",
		Short: "Turn a light off",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			config := parseConfigFile(configFilePath)
			controller := createController(config)

			err := controller.SetLight(lights.Type(args[0]), lights.StateOff)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to turn off light %q: %s\n", args[0], err)
				os.Exit(1)
			}
		},
	}
	typesCmd = &cobra.Command{
		Use:   "types",
		Short: "List the supported light types",
		Run: func(cmd *cobra.Command, args []string) {
			config := parseConfigFile(configFilePath)
			controller := createController(config)

			jsonString, err := json.Marshal(controller.SupportedTypes())
			if err != nil {
				fmt.Println("Error during JSON conversion:", err)
				os.Exit(1)
			}

			fmt.Println(string(jsonString))
		},
	}
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
