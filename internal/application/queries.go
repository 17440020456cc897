package application

import "github.com/bnema/pool-cli/internal/domain"

type Info struct {
	Kind    domain.PoolKind
	Name    string
	Current domain.Item
	Rights  domain.Rights
	Full    []domain.Item
	White   []domain.Item
	Free    []domain.Item
	Black   []domain.Item
}

// Mutation describes the outcome of like, ban or free.
type Mutation struct {
	Targets []domain.Item
	Missing []domain.Item
	White   []domain.Item
	Black   []domain.Item
}

type Result struct {
	Action     Action
	Item       domain.Item
	Items      []domain.Item
	Mutation   *Mutation
	Info       *Info
	Rights     domain.Rights
	BackupPath string
}
