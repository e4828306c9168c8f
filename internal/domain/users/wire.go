package users

import "github.com/recordkit/recordkit/internal/record"

// Register wires the user model and DAO constructors into a factory, under
// the names the factory's conventions expand to.
func Register(f *record.Factory) error {
	if err := f.Register(f.ModelNaming().Expand(ModelName), NewUserModel); err != nil {
		return err
	}
	return f.Register(f.DAONaming().Expand(ModelName), NewUserDao)
}
