// Package main provides the ssmlgen CLI: render speech-synthesis markup
// from raw text, and optionally push it through a configured cloud
// synthesizer.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vaanilabs/ssmlgen/ssml"
	"github.com/vaanilabs/ssmlgen/synth"
	"github.com/vaanilabs/ssmlgen/synth/elevenlabs"
	"github.com/vaanilabs/ssmlgen/synth/google"
	"github.com/vaanilabs/ssmlgen/synth/sarvam"
)

var (
	configFile   string
	languageName string
	pauseFlag    time.Duration
	debugMode    bool

	providerName string
	outputPath   string

	rootCmd = &cobra.Command{
		Use:   "ssmlgen [TEXT]",
		Short: "Convert response text into speech-synthesis markup",
		Long: "Converts a natural-language response into an SSML document with\n" +
			"emotion-appropriate prosody, normalized numeric readings, and\n" +
			"pronunciation overrides. Reads TEXT from arguments or stdin.",
		SilenceUsage: true,
		Args:         cobra.ArbitraryArgs,
		RunE:         runRender,
	}

	speakCmd = &cobra.Command{
		Use:   "speak [TEXT]",
		Short: "Render markup and synthesize it through a cloud provider",
		Args:  cobra.ArbitraryArgs,
		RunE:  runSpeak,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default searches ., $HOME/.ssmlgen)")
	rootCmd.PersistentFlags().StringVarP(&languageName, "language", "l", "english", "logical language name (english, hindi, tamil, telugu)")
	rootCmd.PersistentFlags().DurationVarP(&pauseFlag, "pause", "p", 0, "inter-sentence pause (default from config)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable debug logging")

	speakCmd.Flags().StringVarP(&providerName, "provider", "e", "google", "synthesizer provider (google, elevenlabs, sarvam)")
	speakCmd.Flags().StringVarP(&outputPath, "output", "o", "out.wav", "audio output file")

	rootCmd.AddCommand(speakCmd)

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	if debugMode {
		log.SetLevel(log.DebugLevel)
	}

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("ssmlgen")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home + "/.ssmlgen")
		}
	}

	ssml.SetDefaults()

	if err := viper.ReadInConfig(); err == nil {
		log.Debug("loaded config", "file", viper.ConfigFileUsed())
	}
}

// inputText reads the text to convert from arguments or stdin.
func inputText(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func buildEngine() (*ssml.Engine, error) {
	cfg, err := ssml.LoadConfigFromViper()
	if err != nil {
		return nil, err
	}
	return ssml.New(cfg)
}

func runRender(_ *cobra.Command, args []string) error {
	text, err := inputText(args)
	if err != nil {
		return err
	}

	engine, err := buildEngine()
	if err != nil {
		return err
	}

	fmt.Println(engine.AssembleWithPause(text, languageName, pauseFlag))
	return nil
}

func runSpeak(cmd *cobra.Command, args []string) error {
	text, err := inputText(args)
	if err != nil {
		return err
	}

	engine, err := buildEngine()
	if err != nil {
		return err
	}

	synthesizer, err := buildSynthesizer()
	if err != nil {
		return err
	}
	defer synthesizer.Close() //nolint:errcheck

	synthesizer.SetLanguage(languageName)

	markup := engine.AssembleWithPause(text, languageName, pauseFlag)
	audio, err := synthesizer.Synthesize(cmd.Context(), markup)
	if err != nil {
		return fmt.Errorf("synthesize: %w", err)
	}

	if err := os.WriteFile(outputPath, audio, 0o644); err != nil {
		return fmt.Errorf("write audio: %w", err)
	}

	log.Info("audio written", "provider", providerName, "file", outputPath, "bytes", len(audio))
	return nil
}

func buildSynthesizer() (synth.Synthesizer, error) {
	switch strings.ToLower(providerName) {
	case "google":
		return google.New(google.Config{
			APIKey: viper.GetString("synth.google.api_key"),
		})
	case "elevenlabs":
		return elevenlabs.New(elevenlabs.Config{
			APIKey: viper.GetString("synth.elevenlabs.api_key"),
		})
	case "sarvam":
		return sarvam.New(sarvam.Config{
			APIKey: viper.GetString("synth.sarvam.api_key"),
		})
	default:
		return nil, fmt.Errorf("unknown provider %q: must be google, elevenlabs, or sarvam", providerName)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
