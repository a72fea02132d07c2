package qdrant

import (
	"compliance-assistant/internal/assistant/repository"
	pkgLog "compliance-assistant/pkg/log"
	pkgQdrant "compliance-assistant/pkg/qdrant"
	"compliance-assistant/pkg/voyage"
)

type implRepository struct {
	client         *pkgQdrant.Client
	embedder       *voyage.Client
	collectionName string
	l              pkgLog.Logger
}

// New creates the semantic conversation mirror backed by Qdrant.
func New(client *pkgQdrant.Client, embedder *voyage.Client, collectionName string, l pkgLog.Logger) repository.SemanticRepository {
	return &implRepository{
		client:         client,
		embedder:       embedder,
		collectionName: collectionName,
		l:              l,
	}
}
