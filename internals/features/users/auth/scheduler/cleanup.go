package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	authRepo "gestiongym_backend/internals/features/users/auth/repository"
)

// StartBlacklistCleanupScheduler borra periódicamente los tokens ya expirados
// de token_blacklist.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		intervalHours := 24
		if val := os.Getenv("TOKEN_BLACKLIST_CLEANUP_HOURS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
				intervalHours = parsed
			}
		}

		ticker := time.NewTicker(time.Duration(intervalHours) * time.Hour)
		defer ticker.Stop()

		for {
			rows, err := authRepo.CleanupExpiredBlacklist(db)
			if err != nil {
				log.Printf("[CLEANUP] error limpiando token_blacklist: %v", err)
			} else if rows > 0 {
				log.Printf("[CLEANUP] token_blacklist: %d tokens expirados eliminados", rows)
			}
			<-ticker.C
		}
	}()
}
