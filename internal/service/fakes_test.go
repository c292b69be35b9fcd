package service_test

import (
	"context"
	"database/sql"

	"github.com/rosterhq/roster-api/internal/domain"
	"github.com/rosterhq/roster-api/internal/store"
)

// Function-backed store fakes. Unset methods panic so a test that exercises
// an unexpected call path fails loudly.

type fakeTeamStore struct {
	listFn      func(ctx context.Context) ([]*domain.Team, error)
	getByIDFn   func(ctx context.Context, id int64) (*domain.Team, error)
	getByNameFn func(ctx context.Context, name string) (*domain.Team, error)
	createFn    func(ctx context.Context, team *domain.Team) error
	updateFn    func(ctx context.Context, team *domain.Team) error
	deleteFn    func(ctx context.Context, id int64) error
}

var _ store.TeamStore = (*fakeTeamStore)(nil)

func (f *fakeTeamStore) List(ctx context.Context) ([]*domain.Team, error) {
	return f.listFn(ctx)
}

func (f *fakeTeamStore) GetByID(ctx context.Context, id int64) (*domain.Team, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeTeamStore) GetByName(ctx context.Context, name string) (*domain.Team, error) {
	return f.getByNameFn(ctx, name)
}

func (f *fakeTeamStore) Create(ctx context.Context, team *domain.Team) error {
	return f.createFn(ctx, team)
}

func (f *fakeTeamStore) Update(ctx context.Context, team *domain.Team) error {
	return f.updateFn(ctx, team)
}

func (f *fakeTeamStore) Delete(ctx context.Context, id int64) error {
	return f.deleteFn(ctx, id)
}

func (f *fakeTeamStore) WithTx(_ *sql.Tx) store.TeamStore {
	return f
}

type fakeRoleStore struct {
	listFn      func(ctx context.Context) ([]*domain.Role, error)
	getByIDFn   func(ctx context.Context, id int64) (*domain.Role, error)
	getByNameFn func(ctx context.Context, name string) (*domain.Role, error)
	createFn    func(ctx context.Context, role *domain.Role) error
	updateFn    func(ctx context.Context, role *domain.Role) error
	deleteFn    func(ctx context.Context, id int64) error
}

var _ store.RoleStore = (*fakeRoleStore)(nil)

func (f *fakeRoleStore) List(ctx context.Context) ([]*domain.Role, error) {
	return f.listFn(ctx)
}

func (f *fakeRoleStore) GetByID(ctx context.Context, id int64) (*domain.Role, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeRoleStore) GetByName(ctx context.Context, name string) (*domain.Role, error) {
	return f.getByNameFn(ctx, name)
}

func (f *fakeRoleStore) Create(ctx context.Context, role *domain.Role) error {
	return f.createFn(ctx, role)
}

func (f *fakeRoleStore) Update(ctx context.Context, role *domain.Role) error {
	return f.updateFn(ctx, role)
}

func (f *fakeRoleStore) Delete(ctx context.Context, id int64) error {
	return f.deleteFn(ctx, id)
}

func (f *fakeRoleStore) WithTx(_ *sql.Tx) store.RoleStore {
	return f
}

type fakeProjectTypeStore struct {
	listFn      func(ctx context.Context) ([]*domain.ProjectType, error)
	getByIDFn   func(ctx context.Context, id int64) (*domain.ProjectType, error)
	getByNameFn func(ctx context.Context, name string) (*domain.ProjectType, error)
	createFn    func(ctx context.Context, pt *domain.ProjectType) error
	replaceFn   func(ctx context.Context, pt *domain.ProjectType) error
	deleteFn    func(ctx context.Context, id int64) error
}

var _ store.ProjectTypeStore = (*fakeProjectTypeStore)(nil)

func (f *fakeProjectTypeStore) List(ctx context.Context) ([]*domain.ProjectType, error) {
	return f.listFn(ctx)
}

func (f *fakeProjectTypeStore) GetByID(ctx context.Context, id int64) (*domain.ProjectType, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeProjectTypeStore) GetByName(ctx context.Context, name string) (*domain.ProjectType, error) {
	return f.getByNameFn(ctx, name)
}

func (f *fakeProjectTypeStore) Create(ctx context.Context, pt *domain.ProjectType) error {
	return f.createFn(ctx, pt)
}

func (f *fakeProjectTypeStore) Replace(ctx context.Context, pt *domain.ProjectType) error {
	return f.replaceFn(ctx, pt)
}

func (f *fakeProjectTypeStore) Delete(ctx context.Context, id int64) error {
	return f.deleteFn(ctx, id)
}

func (f *fakeProjectTypeStore) WithTx(_ *sql.Tx) store.ProjectTypeStore {
	return f
}

type fakeDeveloperStore struct {
	listFn    func(ctx context.Context) ([]*domain.Developer, error)
	getByIDFn func(ctx context.Context, id int64) (*domain.Developer, error)
	createFn  func(ctx context.Context, dev *domain.Developer) error
	updateFn  func(ctx context.Context, dev *domain.Developer) error
	deleteFn  func(ctx context.Context, id int64) error
}

var _ store.DeveloperStore = (*fakeDeveloperStore)(nil)

func (f *fakeDeveloperStore) List(ctx context.Context) ([]*domain.Developer, error) {
	return f.listFn(ctx)
}

func (f *fakeDeveloperStore) GetByID(ctx context.Context, id int64) (*domain.Developer, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeDeveloperStore) Create(ctx context.Context, dev *domain.Developer) error {
	return f.createFn(ctx, dev)
}

func (f *fakeDeveloperStore) Update(ctx context.Context, dev *domain.Developer) error {
	return f.updateFn(ctx, dev)
}

func (f *fakeDeveloperStore) Delete(ctx context.Context, id int64) error {
	return f.deleteFn(ctx, id)
}

func (f *fakeDeveloperStore) WithTx(_ *sql.Tx) store.DeveloperStore {
	return f
}

type fakeProjectStore struct {
	listFn    func(ctx context.Context) ([]*domain.Project, error)
	getByIDFn func(ctx context.Context, id int64) (*domain.Project, error)
	createFn  func(ctx context.Context, project *domain.Project) error
	updateFn  func(ctx context.Context, project *domain.Project) error
	deleteFn  func(ctx context.Context, id int64) error
}

var _ store.ProjectStore = (*fakeProjectStore)(nil)

func (f *fakeProjectStore) List(ctx context.Context) ([]*domain.Project, error) {
	return f.listFn(ctx)
}

func (f *fakeProjectStore) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeProjectStore) Create(ctx context.Context, project *domain.Project) error {
	return f.createFn(ctx, project)
}

func (f *fakeProjectStore) Update(ctx context.Context, project *domain.Project) error {
	return f.updateFn(ctx, project)
}

func (f *fakeProjectStore) Delete(ctx context.Context, id int64) error {
	return f.deleteFn(ctx, id)
}

func (f *fakeProjectStore) WithTx(_ *sql.Tx) store.ProjectStore {
	return f
}
