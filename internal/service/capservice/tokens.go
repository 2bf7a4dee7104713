package capservice

// Capability tokens are defined in this package so that only the registry's
// resolve and mint paths can produce a usable value. The fields are
// unexported: outside code can at most construct the zero value, which every
// gated operation rejects via Valid(). Possession of a non-zero token is the
// authorization.

type AdminCap struct {
	id     string
	holder string
}

func (c AdminCap) Valid() bool    { return c.id != "" }
func (c AdminCap) ID() string     { return c.id }
func (c AdminCap) Holder() string { return c.holder }

type GovernCap struct {
	id     string
	holder string
}

func (c GovernCap) Valid() bool    { return c.id != "" }
func (c GovernCap) ID() string     { return c.id }
func (c GovernCap) Holder() string { return c.holder }

type OracleCap struct {
	id     string
	holder string
}

func (c OracleCap) Valid() bool    { return c.id != "" }
func (c OracleCap) ID() string     { return c.id }
func (c OracleCap) Holder() string { return c.holder }

type PartnerCap struct {
	id     string
	holder string
}

func (c PartnerCap) Valid() bool    { return c.id != "" }
func (c PartnerCap) ID() string     { return c.id }
func (c PartnerCap) Holder() string { return c.holder }
