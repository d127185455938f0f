package server

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/ssh"
	gossh "golang.org/x/crypto/ssh"

	"github.com/bilalayas/takipcim/internal/logging"
)

// authorize accepts keys listed in the configured authorized_keys file
func (s *Server) authorize(ctx ssh.Context, key ssh.PublicKey) bool {
	fingerprint := gossh.FingerprintSHA256(key)

	authorized, err := isKeyAuthorized(key, s.cfg.AuthorizedKeysPath)
	if err != nil {
		logging.Logger.Error("Failed to read authorized_keys",
			"error", err,
			"path", s.cfg.AuthorizedKeysPath,
			"user", ctx.User())
		return false
	}

	if !authorized {
		logging.Logger.Warn("Unauthorized SSH key",
			"user", ctx.User(),
			"fingerprint", fingerprint,
			"key_type", key.Type())
		return false
	}

	logging.Logger.Info("SSH key authenticated",
		"user", ctx.User(),
		"fingerprint", fingerprint,
		"key_type", key.Type())
	return true
}

// isKeyAuthorized reports whether key appears in the authorized_keys file at path
func isKeyAuthorized(key ssh.PublicKey, path string) (bool, error) {
	file, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("failed to open authorized_keys: %w", err)
	}
	defer file.Close()

	want := key.Marshal()
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		authorizedKey, _, _, _, err := gossh.ParseAuthorizedKey([]byte(line))
		if err != nil {
			logging.Logger.Debug("Skipping unparsable authorized_keys line", "error", err)
			continue
		}
		if bytes.Equal(want, authorizedKey.Marshal()) {
			return true, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return false, fmt.Errorf("failed to read authorized_keys: %w", err)
	}
	return false, nil
}
