package main

import (
	"log"
	"os"
	"strings"
	"time"

	httpadapter "financequest/internal/adapter/http"
	metricsinmem "financequest/internal/adapter/metrics/inmemory"
	gormrepo "financequest/internal/adapter/repo/gorm"
	memrepo "financequest/internal/adapter/repo/memory"
	"financequest/internal/app/action"
	"financequest/internal/app/event"
	"financequest/internal/app/ports"
	"financequest/internal/app/replay"
	"financequest/internal/app/session"
	"financequest/internal/app/status"
	"financequest/internal/app/tick"
	"financequest/internal/domain/sim"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("load .env: %v", err)
	}

	catalog := mustLoadCatalog()
	repos := mustBuildRepos()
	rng := sim.NewRand(time.Now().UnixNano())
	kpiRecorder := metricsinmem.NewRecorder()

	actions := sim.ActionService{Catalog: catalog}
	engine := sim.TickService{Catalog: catalog, Actions: actions}

	h := httpadapter.Handler{
		SessionUC: session.UseCase{
			TxManager:  repos.TxManager,
			StateRepo:  repos.States,
			HighScores: repos.HighScores,
			EventRepo:  repos.Events,
			Catalog:    catalog,
			Now:        time.Now,
		},
		ActionUC: action.UseCase{
			TxManager: repos.TxManager,
			StateRepo: repos.States,
			EventRepo: repos.Events,
			Metrics:   kpiRecorder,
			Resolver:  actions,
			Rand:      rng,
			Now:       time.Now,
		},
		TickUC: tick.UseCase{
			TxManager:  repos.TxManager,
			StateRepo:  repos.States,
			EventRepo:  repos.Events,
			HighScores: repos.HighScores,
			Summaries:  repos.Summaries,
			Metrics:    kpiRecorder,
			Engine:     engine,
			Rand:       rng,
			Now:        time.Now,
		},
		AckUC: event.UseCase{
			TxManager: repos.TxManager,
			StateRepo: repos.States,
			EventRepo: repos.Events,
			Metrics:   kpiRecorder,
			Now:       time.Now,
		},
		StatusUC: status.UseCase{StateRepo: repos.States, HighScores: repos.HighScores},
		ReplayUC: replay.UseCase{Events: repos.Events},
		KPI:      kpiRecorder,
	}

	s := server.Default(server.WithHostPorts(":8080"))
	h.RegisterRoutes(s)

	log.Println("financequest server listening on :8080")
	s.Spin()
}

type repoSet struct {
	States     ports.PlayerStateRepository
	HighScores ports.HighScoreRepository
	Summaries  ports.SummaryRepository
	Events     ports.EventRepository
	TxManager  ports.TxManager
}

// mustBuildRepos wires Postgres persistence when FINANCEQUEST_DB_DSN is set
// and falls back to the in-memory store otherwise, so the server can run
// standalone during development.
func mustBuildRepos() repoSet {
	dsn := strings.TrimSpace(os.Getenv("FINANCEQUEST_DB_DSN"))
	if dsn == "" {
		log.Println("FINANCEQUEST_DB_DSN not set, using in-memory persistence")
		store := memrepo.NewStore()
		return repoSet{
			States:     memrepo.NewPlayerStateRepo(store),
			HighScores: memrepo.NewHighScoreRepo(store),
			Summaries:  memrepo.NewSummaryRepo(store),
			Events:     memrepo.NewEventRepo(store),
			TxManager:  memrepo.NewTxManager(store),
		}
	}

	db, err := gormrepo.OpenPostgres(dsn)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	if err := gormrepo.AutoMigrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	return repoSet{
		States:     gormrepo.NewPlayerStateRepo(db),
		HighScores: gormrepo.NewHighScoreRepo(db),
		Summaries:  gormrepo.NewSummaryRepo(db),
		Events:     gormrepo.NewEventRepo(db),
		TxManager:  gormrepo.NewTxManager(db),
	}
}

func mustLoadCatalog() sim.Catalog {
	path := strings.TrimSpace(os.Getenv("FINANCEQUEST_CATALOG"))
	if path == "" {
		return sim.DefaultCatalog()
	}
	catalog, err := sim.LoadCatalog(path)
	if err != nil {
		log.Fatalf("load catalog %s: %v", path, err)
	}
	return catalog
}
