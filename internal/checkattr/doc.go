// Package checkattr checks that built-in attributes sit on constructs that
// support them and that the representation hints on one construct agree.
//
// It reports:
//
//	E0517  repr hint on the wrong kind of item
//	E0518  #[inline] on something that is not a function
//	E0566  conflicting representation hints (warning)
//	E0692  repr(transparent) combined with other hints
//	E0698  #[non_exhaustive] on something other than a struct or enum
//
// and an uncoded error for #[target_feature] outside functions.
package checkattr
