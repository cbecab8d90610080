package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/manasgurde21/DailyGrow/internal/backup"
	"github.com/manasgurde21/DailyGrow/internal/constants"
	"github.com/manasgurde21/DailyGrow/internal/logger"
	"github.com/manasgurde21/DailyGrow/internal/service"
	"github.com/manasgurde21/DailyGrow/internal/state"
	"github.com/manasgurde21/DailyGrow/internal/storage"
)

type Context struct {
	Store storage.Provider
}

// Today returns today's date string (YYYY-MM-DD) from the local wall clock.
func Today() string {
	return time.Now().Format(constants.DateFormat)
}

// LoadTracker loads the store and builds a state tracker over it.
func (c *Context) LoadTracker() (*state.Tracker, error) {
	if err := c.Store.Load(); err != nil {
		return nil, err
	}
	return state.Load(service.New(c.Store))
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	// Only SQLite databases are backed up
	if strings.HasSuffix(c.Store.GetConfigPath(), ".json") {
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// Confirm prompts the user for a yes/no answer on stdin, defaulting to no.
func Confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
