package cli

import (
	"fmt"
	"time"

	"github.com/darkobits/frontlawn-website/internal/client/cache"
	"github.com/darkobits/frontlawn-website/internal/client/iocli"
	"github.com/darkobits/frontlawn-website/internal/client/preload"
	"github.com/darkobits/frontlawn-website/internal/client/session"
	"github.com/darkobits/frontlawn-website/internal/client/storage"
)

// Cli объединяет сервисы клиента для выполнения команд
type Cli struct {
	session           *session.Session
	cacheService      cache.Service
	preloader         preload.Preloader
	collectionStorage storage.CollectionStorage
	identityStorage   storage.IdentityStorage
	keyLister         storage.KeyLister
	ttl               time.Duration
	io                iocli.IO
}

// Deps содержит зависимости команд CLI
type Deps struct {
	Session           *session.Session
	CacheService      cache.Service
	Preloader         preload.Preloader
	CollectionStorage storage.CollectionStorage
	IdentityStorage   storage.IdentityStorage
	KeyLister         storage.KeyLister
	TTL               time.Duration
	IO                iocli.IO
}

// New creates a new CLI command runner
func New(deps Deps) *Cli {
	return &Cli{
		session:           deps.Session,
		cacheService:      deps.CacheService,
		preloader:         deps.Preloader,
		collectionStorage: deps.CollectionStorage,
		identityStorage:   deps.IdentityStorage,
		keyLister:         deps.KeyLister,
		ttl:               deps.TTL,
		io:                deps.IO,
	}
}

func PrintUsage() {
	fmt.Println("Frontlawn Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  frontlawn [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version        Show version information")
	fmt.Println("  --source URL     Photo source URL (default: http://localhost:8080/photos)")
	fmt.Println("  --db PATH        Path to local cache database (default: frontlawn.db)")
	fmt.Println("  --ttl DURATION   Cache time-to-live (default: 12h)")
	fmt.Println("  --index N        Force rotation index (development override, 'today' only)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  today            Show today's photo")
	fmt.Println("  peek <offset>    Show the photo offset days from today (offset may be negative)")
	fmt.Println("  refresh          Force-refresh the collection cache")
	fmt.Println("  status           Show cache and identity status")
	fmt.Println()
	fmt.Println("Environment:")
	fmt.Println("  FRONTLAWN_SOURCE_URL   Photo source URL")
	fmt.Println("  FRONTLAWN_DB           Path to local cache database")
	fmt.Println("  FRONTLAWN_CACHE_TTL    Cache time-to-live (e.g. 12h)")
	fmt.Println("  FRONTLAWN_LOG_LEVEL    Log level (debug, info, warn, error)")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  frontlawn today")
	fmt.Println("  frontlawn peek 1")
	fmt.Println("  frontlawn peek -- -2")
	fmt.Println("  frontlawn --ttl 1h refresh")
	fmt.Println("  frontlawn --index 3 today")
}
