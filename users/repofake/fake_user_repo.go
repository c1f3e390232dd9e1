package fakeuserrepo

import (
	"context"
	"sort"
	"sync"

	"github.com/jrsteele09/crm-gateway-admin/internal/errors"
	"github.com/jrsteele09/crm-gateway-admin/users"
)

var _ users.Repo = (*FakeUserRepo)(nil)

type FakeUserRepo struct {
	users     map[int64]users.User
	passwords map[int64]string
	nextID    int64
	lock      sync.RWMutex
}

func NewFakeUserRepo(seed ...users.User) *FakeUserRepo {
	ur := &FakeUserRepo{
		users:     make(map[int64]users.User),
		passwords: make(map[int64]string),
		nextID:    1,
	}
	for _, u := range seed {
		ur.users[u.ID] = u
		if u.ID >= ur.nextID {
			ur.nextID = u.ID + 1
		}
	}
	return ur
}

func (ur *FakeUserRepo) List(_ context.Context) ([]users.User, error) {
	ur.lock.RLock()
	defer ur.lock.RUnlock()

	userList := make([]users.User, 0, len(ur.users))
	for _, u := range ur.users {
		userList = append(userList, u)
	}
	sort.Slice(userList, func(i, j int) bool {
		return userList[i].ID < userList[j].ID
	})
	return userList, nil
}

func (ur *FakeUserRepo) Get(_ context.Context, id int64) (*users.User, error) {
	ur.lock.RLock()
	defer ur.lock.RUnlock()

	u, ok := ur.users[id]
	if !ok {
		return nil, errors.ErrNotFound
	}
	return &u, nil
}

func (ur *FakeUserRepo) Create(_ context.Context, input users.Input) (*users.User, error) {
	ur.lock.Lock()
	defer ur.lock.Unlock()

	u := users.User{
		ID:       ur.nextID,
		Email:    input.Email,
		FullName: input.FullName,
		Role:     input.Role,
	}
	ur.nextID++
	ur.users[u.ID] = u
	ur.passwords[u.ID] = input.Password
	return &u, nil
}

func (ur *FakeUserRepo) Update(_ context.Context, id int64, input users.Input) (*users.User, error) {
	ur.lock.Lock()
	defer ur.lock.Unlock()

	u, ok := ur.users[id]
	if !ok {
		return nil, errors.ErrNotFound
	}
	if input.FullName != "" {
		u.FullName = input.FullName
	}
	if input.Email != "" {
		u.Email = input.Email
	}
	if input.Role != "" {
		u.Role = input.Role
	}
	if input.Password != "" {
		ur.passwords[id] = input.Password
	}
	ur.users[id] = u
	return &u, nil
}

func (ur *FakeUserRepo) Delete(_ context.Context, id int64) error {
	ur.lock.Lock()
	defer ur.lock.Unlock()

	if _, ok := ur.users[id]; !ok {
		return errors.ErrNotFound
	}
	delete(ur.users, id)
	delete(ur.passwords, id)
	return nil
}

// Password exposes the last password written for a user, for assertions in tests
func (ur *FakeUserRepo) Password(id int64) string {
	ur.lock.RLock()
	defer ur.lock.RUnlock()
	return ur.passwords[id]
}
