package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"harulog/internal/adapters/api"
	"harulog/internal/adapters/cache"
	"harulog/internal/adapters/logger"
	"harulog/internal/adapters/otel"
	"harulog/internal/adapters/prompter"
	"harulog/internal/day"
	"harulog/internal/domain"
	"harulog/internal/infrastructure/config"
	"harulog/internal/ports"
	"harulog/internal/util"
)

// buildService wires a day service for one command invocation. The
// returned cleanup flushes pending syncs and closes the collaborators;
// call it before exiting.
func buildService(ctx context.Context, withPrompter bool) (*day.Service, func(), error) {
	date, err := resolveDate()
	if err != nil {
		return nil, nil, err
	}

	cfg, err := config.LoadClient()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.NewFileLogger(filepath.Dir(cfg.CachePath))

	dayCache, err := cache.Open(cfg.CachePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open local cache: %w", err)
	}

	var metrics ports.MetricsExporter
	otelCfg := otel.LoadConfig()
	if otelCfg.Enabled {
		exp, err := otel.NewExporter(ctx, otelCfg)
		if err != nil {
			log.Error(fmt.Sprintf("Failed to initialize metrics exporter: %v", err))
			metrics = otel.NewNoOpExporter()
		} else {
			metrics = exp
		}
	} else {
		metrics = otel.NewNoOpExporter()
	}

	var asker ports.Prompter
	if withPrompter {
		asker = prompter.NewTTYPrompter(log)
	}

	svc := day.NewService(day.Options{
		Repo:     api.NewClient(cfg.API.URL, cfg.API.Token),
		Cache:    dayCache,
		Prompter: asker,
		Logger:   log,
		Metrics:  metrics,
		Debounce: time.Duration(cfg.DebounceMS) * time.Millisecond,
	})

	cleanup := func() {
		if err := svc.Flush(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "failed to sync sessions: %v\n", err)
		}
		svc.Close()
		_ = metrics.Close(context.Background())
		_ = dayCache.Close()
	}

	if err := svc.Load(ctx, date); err != nil {
		log.Error(fmt.Sprintf("Failed to load %s: %v", date, err))
	}
	return svc, cleanup, nil
}

func resolveDate() (string, error) {
	if flagDate == "" {
		return util.Today(), nil
	}
	if !util.ValidDate(flagDate) {
		return "", fmt.Errorf("invalid date %q, expected YYYY-MM-DD", flagDate)
	}
	return flagDate, nil
}

// printTimeline renders the resolved display sequence: set labels
// followed by the sessions inside them.
func printTimeline(sessions []domain.Session) {
	items := domain.ResolveSetLabels(sessions)
	if len(items) == 0 {
		fmt.Println("기록된 세션이 없습니다.")
		return
	}

	position := 0
	for _, item := range items {
		if item.Kind == domain.ItemSetLabel {
			fmt.Printf("─── %d세트 ───\n", item.SetNumber)
			continue
		}
		position++
		fmt.Printf("%2d. %s\n", position, formatSession(item.Session))
	}
}

func formatSession(s domain.Session) string {
	clock := "--:--"
	if s.StartTime != nil {
		clock = util.FormatClock(*s.StartTime)
	}

	label := s.Action
	if label == "" {
		label = "(미입력)"
	}

	duration := ""
	if s.StartTime != nil && s.EndTime != nil {
		duration = " · " + util.FormatMinutes(s.DurationMinutes())
	}

	return fmt.Sprintf("%s  %s [%s]%s", clock, label, domain.StatusText(s.Status), duration)
}

// sessionAtPosition maps a 1-based eligible-timeline position back to the
// underlying session, the way positions are printed by printTimeline.
func sessionAtPosition(sessions []domain.Session, arg string) (domain.Session, error) {
	pos, err := strconv.Atoi(arg)
	if err != nil || pos < 1 {
		return domain.Session{}, fmt.Errorf("invalid session position %q", arg)
	}

	eligible := domain.EligibleSessions(sessions)
	if pos > len(eligible) {
		return domain.Session{}, fmt.Errorf("no session at position %d", pos)
	}
	return eligible[pos-1], nil
}
