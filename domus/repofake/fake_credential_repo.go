package fakedomusrepo

import (
	"context"
	"sync"

	"github.com/jrsteele09/crm-gateway-admin/domus"
)

var _ domus.Repo = (*FakeCredentialRepo)(nil)

// FakeCredentialRepo mirrors the upstream behaviour: defaults until the first update
type FakeCredentialRepo struct {
	credential *domus.Credential
	lock       sync.RWMutex
}

func NewFakeCredentialRepo() *FakeCredentialRepo {
	return &FakeCredentialRepo{}
}

func (r *FakeCredentialRepo) Get(_ context.Context) (domus.Credential, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	if r.credential == nil {
		return domus.DefaultCredential(), nil
	}
	return *r.credential, nil
}

func (r *FakeCredentialRepo) Update(_ context.Context, input domus.Input) (domus.Credential, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	c := domus.Credential{
		ID:             1,
		CRMToken:       input.CRMToken,
		InventoryToken: input.InventoryToken,
		APIBase:        input.APIBase,
		CRMBase:        input.CRMBase,
		Inmobiliaria:   input.Inmobiliaria,
		Grupo:          input.Grupo,
		RequiereGrupo:  input.RequiereGrupo,
	}
	r.credential = &c
	return c, nil
}
