package report_service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/vuciv/imessage-wrapped/config"
	"github.com/vuciv/imessage-wrapped/domain"
	"github.com/vuciv/imessage-wrapped/infra"
	"github.com/vuciv/imessage-wrapped/repository"
	deck_service "github.com/vuciv/imessage-wrapped/service/deck"
	names_service "github.com/vuciv/imessage-wrapped/service/names"
	stats_service "github.com/vuciv/imessage-wrapped/service/stats"
	target_service "github.com/vuciv/imessage-wrapped/service/target"
	"github.com/vuciv/imessage-wrapped/util"

	"github.com/google/uuid"
)

//----------------------------------------------------------------------------------------------------
// One-Shot Pipeline Orchestration
//----------------------------------------------------------------------------------------------------

// Run executes the whole pipeline once: resolve the window and target,
// aggregate the metric battery, assemble the slide deck, and return the
// report document. Every stage either fully succeeds or the run aborts.
func Run(cfg *config.Config) (*domain.Report, error) {
	window, err := domain.NewYearWindow(cfg.Year, cfg.Location)
	if err != nil {
		return nil, err
	}

	db, err := infra.ConnectMessageDB(cfg.ArchivePath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			log.Printf("Error closing message archive: %v", closeErr)
		}
	}()
	store := repository.NewArchiveStore(db)

	nameRecords, err := repository.LoadNameRecords(cfg.ContactsPath)
	if err != nil {
		// The contacts source is optional; resolution degrades to identifiers.
		log.Printf("Warning: could not read contacts source: %v", err)
	}
	lookup := names_service.BuildLookup(nameRecords)
	resolver := names_service.NewResolver(lookup, cfg.Privacy, names_service.NewPseudonymMap())

	var resolution target_service.Resolution
	switch domain.Mode(cfg.Mode) {
	case domain.ModeAll:
		resolution = target_service.ResolveAll()
	case domain.ModeGroup:
		resolution, err = target_service.ResolveGroup(store, cfg.Target, cfg.Name, window)
	case domain.ModeIndividual:
		resolution, err = target_service.ResolveIndividual(store, lookup, resolver, cfg.Target, cfg.Name, cfg.SelfName)
	default:
		return nil, fmt.Errorf("unknown mode '%s' (want individual, group or all)", cfg.Mode)
	}
	if err != nil {
		return nil, err
	}
	log.Printf("Resolved target: mode=%s title=%q", resolution.Mode, resolution.Title)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	aggregator := stats_service.NewAggregator(store, resolver, cfg.Location, rng, cfg.SelfName)
	metrics, err := aggregator.Aggregate(resolution.Mode, resolution.Scope, window)
	if err != nil {
		return nil, err
	}
	log.Printf("Aggregated %d messages for %d.", metrics.TotalCount, cfg.Year)

	sections := deck_service.Assemble(resolution.Mode, resolution.Title, cfg.SelfName, resolution.ContactName, cfg.Year, metrics)

	report := &domain.Report{
		RunID:       uuid.NewString(),
		Year:        cfg.Year,
		Mode:        resolution.Mode,
		Title:       resolution.Title,
		SelfName:    cfg.SelfName,
		ContactName: resolution.ContactName,
		GeneratedAt: time.Now().UTC(),
		Sections:    sections,
	}

	if cfg.NatsURL != "" {
		if err := publishReport(cfg, report); err != nil {
			return nil, fmt.Errorf("report handoff failed: %w", err)
		}
	}

	return report, nil
}

// reportEnvelope wraps the report for the NATS handoff with the same
// id/server/timestamp framing every other payload on the bus carries.
type reportEnvelope struct {
	ID              string         `json:"id"`
	Server          string         `json:"server"`
	TimestampServer int64          `json:"timestamp"`
	Report          *domain.Report `json:"report"`
}

// publishReport hands the finished document to the configured subject and
// archives it in the JetStream KV bucket keyed by run id, so a presentation
// consumer can pick it up later.
func publishReport(cfg *config.Config, report *domain.Report) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	nc, kv, err := infra.ConnectToNATS(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to NATS: %w", err)
	}
	defer nc.Close()

	envelope := reportEnvelope{
		ID:              report.RunID,
		Server:          util.GetHostname(),
		TimestampServer: time.Now().UnixMilli(),
		Report:          report,
	}
	payload, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to serialize report envelope: %w", err)
	}

	if _, err := kv.Put(ctx, report.RunID, payload); err != nil {
		return fmt.Errorf("failed to archive report in KV bucket: %w", err)
	}
	if err := nc.Publish(cfg.Nats.Subject, payload); err != nil {
		return fmt.Errorf("failed to publish report: %w", err)
	}

	log.Printf("Published report '%s' to '%s'.", report.RunID, cfg.Nats.Subject)
	return nil
}
