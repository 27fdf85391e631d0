package repositories

import "errors"

// ErrDuplicate é devolvido quando uma escrita viola uma restrição de unicidade
// do banco. Os serviços convertem em conflito (409).
var ErrDuplicate = errors.New("duplicate key")
