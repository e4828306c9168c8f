//go:build unit
// +build unit

package record

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newUserFixture builds a factory with a registered "User" model and
// "UserDao" DAO under the default conventions.
func newUserFixture(t *testing.T, conn Conn) (*Factory, *stubModel) {
	t.Helper()

	f := newTestFactory(t, conn)
	require.NoError(t, f.Register("User", func(f *Factory) (any, error) {
		return &stubModel{Model: NewModel(f, f.ModelNaming().Expand("User"))}, nil
	}))
	require.NoError(t, f.Register("UserDao", newStubDao))

	rec, err := f.CreateModel("User")
	require.NoError(t, err)
	model, ok := rec.(*stubModel)
	require.True(t, ok)

	return f, model
}

func TestSetDAONameOnce(t *testing.T) {
	_, model := newUserFixture(t, &stubConn{tx: &stubTx{}})

	require.NoError(t, model.SetDAOName("UserDao"))
	assert.Equal(t, "UserDao", model.DAOName())
}

func TestSetDAONameTwiceFails(t *testing.T) {
	_, model := newUserFixture(t, &stubConn{tx: &stubTx{}})

	require.NoError(t, model.SetDAOName("UserDao"))

	// A second assignment fails even when the names are equal.
	err := model.SetDAOName("UserDao")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDAONameAlreadySet)
	assert.Equal(t, "UserDao", model.DAOName())
}

func TestSetDAONameEmptyFails(t *testing.T) {
	_, model := newUserFixture(t, &stubConn{tx: &stubTx{}})

	err := model.SetDAOName("")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDAONameEmpty)

	// State is untouched: a valid assignment still succeeds afterwards.
	assert.Equal(t, "", model.DAOName())
	require.NoError(t, model.SetDAOName("UserDao"))
}

func TestDAOIsCached(t *testing.T) {
	_, model := newUserFixture(t, &stubConn{tx: &stubTx{}})

	first, err := model.DAO()
	require.NoError(t, err)
	second, err := model.DAO()
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestResetDAOCreatesFreshInstance(t *testing.T) {
	_, model := newUserFixture(t, &stubConn{tx: &stubTx{}})

	before, err := model.DAO()
	require.NoError(t, err)

	replaced, err := model.ResetDAO()
	require.NoError(t, err)
	assert.NotSame(t, before, replaced)

	// The replacement is created eagerly and cached.
	after, err := model.DAO()
	require.NoError(t, err)
	assert.Same(t, replaced, after)
}

func TestSetDAOInjectsInstance(t *testing.T) {
	f, model := newUserFixture(t, &stubConn{tx: &stubTx{}})

	injected := &stubDao{Dao: NewDao(f)}
	model.SetDAO(injected)

	got, err := model.DAO()
	require.NoError(t, err)
	assert.Same(t, injected, got)
}

func TestCreateDAODoesNotCache(t *testing.T) {
	_, model := newUserFixture(t, &stubConn{tx: &stubTx{}})

	created, err := model.CreateDAO("")
	require.NoError(t, err)

	cached, err := model.DAO()
	require.NoError(t, err)
	assert.NotSame(t, created, cached)
}

func TestModelNameDerivation(t *testing.T) {
	_, model := newUserFixture(t, &stubConn{tx: &stubTx{}})

	assert.Equal(t, "User", model.ModelName())
}

func TestCreateModelResolvesSibling(t *testing.T) {
	f, model := newUserFixture(t, &stubConn{tx: &stubTx{}})

	rec, err := model.CreateModel("User", nil)
	require.NoError(t, err)
	sibling, ok := rec.(*stubModel)
	require.True(t, ok)
	assert.NotSame(t, model, sibling)
	assert.Same(t, f, sibling.Factory())
}

func TestCreateModelSeedsDAO(t *testing.T) {
	f, model := newUserFixture(t, &stubConn{tx: &stubTx{}})

	seed := &stubDao{Dao: NewDao(f)}
	rec, err := model.CreateModel("User", seed)
	require.NoError(t, err)

	sibling, ok := rec.(*stubModel)
	require.True(t, ok)
	got, err := sibling.DAO()
	require.NoError(t, err)
	assert.Same(t, seed, got)
}

func TestModelTransactionalDelegates(t *testing.T) {
	tx := &stubTx{}
	_, model := newUserFixture(t, &stubConn{tx: tx})

	err := model.Transactional(context.Background(), func() error { return nil })

	require.NoError(t, err)
	assert.Equal(t, 1, tx.commits)
	assert.Equal(t, 0, tx.rollbacks)
}

func TestSymmetricConventions(t *testing.T) {
	// Models and DAOs resolve to the same canonical domain name through
	// independent, symmetric conventions.
	conn := &stubConn{tx: &stubTx{}}
	f := newTestFactory(t, conn,
		WithModelNaming(Convention{Prefix: "app.models."}),
		WithDAONaming(Convention{Prefix: "app.dao.", Postfix: "Dao"}),
	)
	require.NoError(t, f.Register("app.models.User", func(f *Factory) (any, error) {
		return &stubModel{Model: NewModel(f, "app.models.User")}, nil
	}))
	require.NoError(t, f.Register("app.dao.UserDao", newStubDao))

	rec, err := f.CreateModel("User")
	require.NoError(t, err)
	model, ok := rec.(*stubModel)
	require.True(t, ok)

	assert.Equal(t, "User", model.ModelName())
	assert.Equal(t, "User", f.DAONaming().Short("app.dao.UserDao"))

	dao, err := model.DAO()
	require.NoError(t, err)
	assert.IsType(t, &stubDao{}, dao)
}
