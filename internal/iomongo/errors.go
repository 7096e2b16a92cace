package iomongo

import (
	"fmt"
	"net/url"
	"runtime"

	"github.com/gnames/gn"
	"github.com/jupiter-tools/mongotest/pkg/errcode"
)

// ConnectionError is returned when the client cannot reach MongoDB.
func ConnectionError(uri, database string, err error) error {
	msg := `Could not connect to MongoDB

<em>Possible causes:</em>
  • MongoDB is not running
  • Connection string is incorrect
  • Network connectivity issues

<em>How to fix:</em>
  1. Check if MongoDB is running:
     <em>mongosh %s --eval 'db.runCommand({ping: 1})'</em>

  2. Review connection settings:
     URI: %s
     Database: %s`
	safe := redact(uri)
	vars := []any{safe, safe, database}
	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("failed to connect to %s/%s: %w",
			safe, database, err),
	}
}

func NotConnectedError() error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Database is not connected",
		Err:  fmt.Errorf("from %s: operator is not connected", fn.Name()),
	}
}

func ListCollectionsError(database string, err error) error {
	msg := "Cannot list collections of <em>%s</em>"
	vars := []any{database}
	return &gn.Error{
		Code: errcode.DBListCollectionsError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot list collections of %s: %w", database, err),
	}
}

func ReadCollectionError(collection string, err error) error {
	msg := "Cannot read collection <em>%s</em>"
	vars := []any{collection}
	return &gn.Error{
		Code: errcode.DBReadCollectionError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read collection %s: %w", collection, err),
	}
}

func InsertError(collection string, err error) error {
	msg := "Cannot insert documents into <em>%s</em>"
	vars := []any{collection}
	return &gn.Error{
		Code: errcode.DBInsertError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot insert into %s: %w", collection, err),
	}
}

func DropError(collection string, err error) error {
	msg := "Cannot drop collection <em>%s</em>"
	vars := []any{collection}
	return &gn.Error{
		Code: errcode.DBDropError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot drop %s: %w", collection, err),
	}
}

// redact hides the password of a connection string.
func redact(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return uri
	}
	return u.Redacted()
}
