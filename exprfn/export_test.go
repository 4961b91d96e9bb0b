package exprfn

// CachedPrograms reports the number of compiled programs currently cached;
// used by white-box tests only.
func (c *Compiler) CachedPrograms() int {
	return c.programs.ItemCount()
}
