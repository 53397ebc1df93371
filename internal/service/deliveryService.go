package service

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/saeed-Underline/fidibo/internal/digest"
	"github.com/saeed-Underline/fidibo/internal/entity"
	"github.com/saeed-Underline/fidibo/internal/pkg/kafka"
	"github.com/saeed-Underline/fidibo/internal/pkg/storage"
	"github.com/saeed-Underline/fidibo/internal/rating"
	"github.com/saeed-Underline/fidibo/pkg/telegram"

	"github.com/sirupsen/logrus"
)

// DeliveryService pushes a ranked snapshot to every configured sink:
// stdout, the snapshot file, the Telegram digest, and Kafka.
type DeliveryService interface {
	Deliver(shows []*entity.Show) error
}

type deliveryService struct {
	out          io.Writer
	store        storage.SnapshotStorage
	snapshotFile string
	bot          *telegram.Bot
	chatID       string
	maxLen       int
	producer     kafka.Producer
	engine       *rating.Engine
}

// NewDeliveryService creates a new instance of DeliveryService. bot and
// producer may be nil; those sinks are then skipped.
func NewDeliveryService(
	out io.Writer,
	store storage.SnapshotStorage,
	snapshotFile string,
	bot *telegram.Bot,
	chatID string,
	maxLen int,
	producer kafka.Producer,
	engine *rating.Engine,
) DeliveryService {
	return &deliveryService{
		out:          out,
		store:        store,
		snapshotFile: snapshotFile,
		bot:          bot,
		chatID:       chatID,
		maxLen:       maxLen,
		producer:     producer,
		engine:       engine,
	}
}

// Deliver never aborts on a single sink failure: every sink gets its
// chance and the first error is reported at the end.
func (d *deliveryService) Deliver(shows []*entity.Show) error {
	var firstErr error

	payload, err := json.MarshalIndent(shows, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	if d.out != nil {
		fmt.Fprintln(d.out, string(payload))
	}

	if d.store != nil {
		if err := d.store.Save(d.snapshotFile, shows); err != nil {
			logrus.Errorf("Failed to save snapshot file: %v", err)
			firstErr = err
		} else {
			logrus.Infof("Saved %s (shows=%d)", d.snapshotFile, len(shows))
		}
	}

	if d.bot != nil {
		summary := digest.Build(shows, d.engine)
		chunks := digest.SplitChunks(summary, d.maxLen)
		if err := d.bot.SendChunked(d.chatID, chunks); err != nil {
			logrus.Errorf("Telegram send failed: %v", err)
			if firstErr == nil {
				firstErr = err
			}
		} else {
			logrus.Infof("Sent Telegram summary in %d chunks", len(chunks))
		}
	} else {
		logrus.Warn("Telegram bot not configured, skipping send")
	}

	if d.producer != nil {
		if err := d.producer.PublishSnapshot(shows); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
