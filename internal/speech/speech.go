// Package speech provides best-effort pronunciation playback backed by a
// local mp3 cache. Failures degrade to a stderr notice; quiz flow never
// depends on audio working.
package speech

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

const defaultEndpoint = "https://translate.google.com/translate_tts"

// Speaker synthesizes and plays pronunciation audio. The zero configuration
// (no player command) turns every call into a silent no-op.
type Speaker struct {
	wordDir    string
	exampleDir string
	player     []string
	lang       string
	endpoint   string
	client     *http.Client

	noticeShown bool
}

// New returns a speaker caching mp3 files under baseDir. player is the
// external playback command, split on whitespace; empty disables audio.
func New(baseDir, player, lang string) *Speaker {
	if lang == "" {
		lang = "en"
	}
	return &Speaker{
		wordDir:    filepath.Join(baseDir, "audio_cache", "words_audio"),
		exampleDir: filepath.Join(baseDir, "audio_cache", "examples_audio"),
		player:     strings.Fields(player),
		lang:       lang,
		endpoint:   defaultEndpoint,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

// Enabled reports whether a playback command is configured.
func (s *Speaker) Enabled() bool {
	return len(s.player) > 0
}

// Speak plays the pronunciation for text, fetching and caching it first
// when needed. It never fails; problems are reported once on stderr and the
// caller proceeds text-only.
func (s *Speaker) Speak(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	if !s.Enabled() {
		s.notice("audio playback disabled; set player in the config to enable it")
		return
	}
	path, err := s.ensure(text)
	if err != nil {
		s.notice(fmt.Sprintf("speech unavailable: %v", err))
		return
	}
	cmd := exec.Command(s.player[0], append(s.player[1:], path)...)
	if err := cmd.Run(); err != nil {
		s.notice(fmt.Sprintf("audio player failed: %v", err))
	}
}

// RemoveCached deletes the cached audio for text, if any.
func (s *Speaker) RemoveCached(text string) {
	path := s.cachePath(strings.TrimSpace(text))
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		s.notice(fmt.Sprintf("failed to remove cached audio: %v", err))
	}
}

// cachePath partitions the cache: single words key by their lower-cased
// text, multi-word input keys by a content hash.
func (s *Speaker) cachePath(text string) string {
	if text == "" {
		return ""
	}
	if len(strings.Fields(text)) == 1 {
		return filepath.Join(s.wordDir, strings.ToLower(text)+".mp3")
	}
	sum := md5.Sum([]byte(text))
	return filepath.Join(s.exampleDir, hex.EncodeToString(sum[:])[:10]+".mp3")
}

func (s *Speaker) ensure(text string) (string, error) {
	path := s.cachePath(text)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("failed to stat cached audio: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create audio cache: %w", err)
	}
	if err := s.fetch(text, path); err != nil {
		return "", err
	}
	return path, nil
}

func (s *Speaker) fetch(text, path string) error {
	query := url.Values{}
	query.Set("ie", "UTF-8")
	query.Set("client", "tw-ob")
	query.Set("tl", s.lang)
	query.Set("q", text)

	resp, err := s.client.Get(s.endpoint + "?" + query.Encode())
	if err != nil {
		return fmt.Errorf("failed to fetch audio: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			// Best-effort close after download.
			_ = cerr
		}
	}()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("audio endpoint returned %s", resp.Status)
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(path), "audio-*.mp3")
	if err != nil {
		return fmt.Errorf("failed to create temp audio file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := io.Copy(tmpFile, resp.Body); err != nil {
		return fmt.Errorf("failed to write audio file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close audio file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to cache audio file: %w", err)
	}
	return nil
}

func (s *Speaker) notice(msg string) {
	if s.noticeShown {
		return
	}
	s.noticeShown = true
	if _, err := fmt.Fprintf(os.Stderr, "%s\n", msg); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
