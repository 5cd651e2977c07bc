package datastore

import (
	"github.com/goodnatureofminers/stacks-indexer/internal/stacks/notify"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Notifier interface {
		Publish(n notify.Notification)
	}
)
