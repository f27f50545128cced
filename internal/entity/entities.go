package entity

// namedEntities is the fixed whitelist of standard HTML named character
// references accepted by the guard (the HTML 4 set). Names are case
// sensitive, matching the reference names themselves.
var namedEntities = map[string]bool{
	// markup-significant
	"quot": true, "amp": true, "lt": true, "gt": true,

	// Latin-1 supplement
	"nbsp": true, "iexcl": true, "cent": true, "pound": true, "curren": true,
	"yen": true, "brvbar": true, "sect": true, "uml": true, "copy": true,
	"ordf": true, "laquo": true, "not": true, "shy": true, "reg": true,
	"macr": true, "deg": true, "plusmn": true, "sup2": true, "sup3": true,
	"acute": true, "micro": true, "para": true, "middot": true, "cedil": true,
	"sup1": true, "ordm": true, "raquo": true, "frac14": true, "frac12": true,
	"frac34": true, "iquest": true,
	"Agrave": true, "Aacute": true, "Acirc": true, "Atilde": true, "Auml": true,
	"Aring": true, "AElig": true, "Ccedil": true, "Egrave": true, "Eacute": true,
	"Ecirc": true, "Euml": true, "Igrave": true, "Iacute": true, "Icirc": true,
	"Iuml": true, "ETH": true, "Ntilde": true, "Ograve": true, "Oacute": true,
	"Ocirc": true, "Otilde": true, "Ouml": true, "times": true, "Oslash": true,
	"Ugrave": true, "Uacute": true, "Ucirc": true, "Uuml": true, "Yacute": true,
	"THORN": true, "szlig": true,
	"agrave": true, "aacute": true, "acirc": true, "atilde": true, "auml": true,
	"aring": true, "aelig": true, "ccedil": true, "egrave": true, "eacute": true,
	"ecirc": true, "euml": true, "igrave": true, "iacute": true, "icirc": true,
	"iuml": true, "eth": true, "ntilde": true, "ograve": true, "oacute": true,
	"ocirc": true, "otilde": true, "ouml": true, "divide": true, "oslash": true,
	"ugrave": true, "uacute": true, "ucirc": true, "uuml": true, "yacute": true,
	"thorn": true, "yuml": true,

	// Latin extended and spacing modifiers
	"OElig": true, "oelig": true, "Scaron": true, "scaron": true, "Yuml": true,
	"fnof": true, "circ": true, "tilde": true,

	// Greek
	"Alpha": true, "Beta": true, "Gamma": true, "Delta": true, "Epsilon": true,
	"Zeta": true, "Eta": true, "Theta": true, "Iota": true, "Kappa": true,
	"Lambda": true, "Mu": true, "Nu": true, "Xi": true, "Omicron": true,
	"Pi": true, "Rho": true, "Sigma": true, "Tau": true, "Upsilon": true,
	"Phi": true, "Chi": true, "Psi": true, "Omega": true,
	"alpha": true, "beta": true, "gamma": true, "delta": true, "epsilon": true,
	"zeta": true, "eta": true, "theta": true, "iota": true, "kappa": true,
	"lambda": true, "mu": true, "nu": true, "xi": true, "omicron": true,
	"pi": true, "rho": true, "sigmaf": true, "sigma": true, "tau": true,
	"upsilon": true, "phi": true, "chi": true, "psi": true, "omega": true,
	"thetasym": true, "upsih": true, "piv": true,

	// general punctuation
	"ensp": true, "emsp": true, "thinsp": true, "zwnj": true, "zwj": true,
	"lrm": true, "rlm": true, "ndash": true, "mdash": true, "lsquo": true,
	"rsquo": true, "sbquo": true, "ldquo": true, "rdquo": true, "bdquo": true,
	"dagger": true, "Dagger": true, "bull": true, "hellip": true, "permil": true,
	"prime": true, "Prime": true, "lsaquo": true, "rsaquo": true, "oline": true,
	"frasl": true, "euro": true,

	// letterlike symbols
	"image": true, "weierp": true, "real": true, "trade": true, "alefsym": true,

	// arrows
	"larr": true, "uarr": true, "rarr": true, "darr": true, "harr": true,
	"crarr": true, "lArr": true, "uArr": true, "rArr": true, "dArr": true,
	"hArr": true,

	// mathematical operators
	"forall": true, "part": true, "exist": true, "empty": true, "nabla": true,
	"isin": true, "notin": true, "ni": true, "prod": true, "sum": true,
	"minus": true, "lowast": true, "radic": true, "prop": true, "infin": true,
	"ang": true, "and": true, "or": true, "cap": true, "cup": true,
	"int": true, "there4": true, "sim": true, "cong": true, "asymp": true,
	"ne": true, "equiv": true, "le": true, "ge": true, "sub": true,
	"sup": true, "nsub": true, "sube": true, "supe": true, "oplus": true,
	"otimes": true, "perp": true, "sdot": true,

	// technical and geometric
	"lceil": true, "rceil": true, "lfloor": true, "rfloor": true,
	"lang": true, "rang": true, "loz": true,

	// misc symbols
	"spades": true, "clubs": true, "hearts": true, "diams": true,
}
