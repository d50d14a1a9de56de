package brand

import "errors"

var (
	ErrBrandNotFound       = errors.New("thread brand not found")
	ErrBrandNameExists     = errors.New("thread brand with this company name already exists")
	ErrParentBrandNotFound = errors.New("parent brand not found")
	ErrParentBrandNested   = errors.New("parent brand is itself a sub-brand")
	ErrBrandHasChildren    = errors.New("brand has sub-brands and cannot take a parent")
	ErrBrandInUse          = errors.New("brand is referenced by challans or sub-brands")
)
