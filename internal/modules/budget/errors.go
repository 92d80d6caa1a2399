package budget

import "errors"

var (
	ErrTableClosed     = errors.New("budget table is closed for editing")
	ErrWindowClosed    = errors.New("department editing window is closed")
	ErrWrongDepartment = errors.New("row belongs to another department")
	ErrNoDepartment    = errors.New("account has no department assigned")
)
