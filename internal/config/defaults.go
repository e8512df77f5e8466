package config

import (
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultLogLevel        = "info"
	DefaultInlineCacheTime = 300
	DefaultTMDBBaseURL     = "https://api.themoviedb.org/3"
	DefaultTMDBTimeout     = 10 * time.Second

	// HealthTaskName is the scheduler key of the TMDB health probe.
	HealthTaskName        = "tmdb_health"
	DefaultHealthSchedule = "0 */5 * * * *"
)

const (
	DefaultWelcomeMessage = "Hi! I search The Movie Database for you.\n\n" +
		"Type @botname followed by a movie, show or person in any chat and pick a result to share its card."
	DefaultHelpMessage = "Usage: @botname <query>\n\n" +
		"Examples:\n@botname the matrix\n@botname breaking bad\n@botname keanu reeves\n\n" +
		"Movies show director, writers and cast; shows show creators and air dates; people show birth and death details."
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", DefaultLogLevel)
	v.SetDefault("logger.json", false)

	v.SetDefault("telegram.token", "")
	v.SetDefault("telegram.inline_cache_time", DefaultInlineCacheTime)

	v.SetDefault("tmdb.token", "")
	v.SetDefault("tmdb.base_url", DefaultTMDBBaseURL)
	v.SetDefault("tmdb.language", "")
	v.SetDefault("tmdb.timeout", DefaultTMDBTimeout)

	v.SetDefault("metrics.addr", "")

	v.SetDefault("scheduler.tasks."+HealthTaskName+".enabled", true)
	v.SetDefault("scheduler.tasks."+HealthTaskName+".schedule", DefaultHealthSchedule)

	v.SetDefault("messages.welcome", DefaultWelcomeMessage)
	v.SetDefault("messages.help", DefaultHelpMessage)
}
