package texuni

// 数据驱动：符号映射集中在这个文件，解析逻辑不关心具体条目

// Symbols LaTeX 命令到 Unicode 的直接映射
var Symbols = map[string]string{
	// 希腊字母（小写）
	"alpha": "α", "beta": "β", "gamma": "γ", "delta": "δ",
	"epsilon": "ε", "varepsilon": "ε", "zeta": "ζ", "eta": "η",
	"theta": "θ", "vartheta": "ϑ", "iota": "ι", "kappa": "κ",
	"lambda": "λ", "mu": "μ", "nu": "ν", "xi": "ξ",
	"pi": "π", "varpi": "ϖ", "rho": "ρ", "varrho": "ϱ",
	"sigma": "σ", "varsigma": "ς", "tau": "τ", "upsilon": "υ",
	"phi": "φ", "varphi": "φ", "chi": "χ", "psi": "ψ", "omega": "ω",

	// 希腊字母（大写）
	"Gamma": "Γ", "Delta": "Δ", "Theta": "Θ", "Lambda": "Λ",
	"Xi": "Ξ", "Pi": "Π", "Sigma": "Σ", "Upsilon": "Υ",
	"Phi": "Φ", "Psi": "Ψ", "Omega": "Ω",

	// 二元运算
	"times": "×", "div": "÷", "pm": "±", "mp": "∓",
	"cdot": "·", "ast": "∗", "star": "⋆", "circ": "∘",
	"bullet": "•", "oplus": "⊕", "ominus": "⊖", "otimes": "⊗",
	"oslash": "⊘", "odot": "⊙", "wedge": "∧", "vee": "∨",
	"cap": "∩", "cup": "∪", "setminus": "∖", "amalg": "⨿",

	// 关系
	"leq": "≤", "le": "≤", "geq": "≥", "ge": "≥",
	"neq": "≠", "ne": "≠", "equiv": "≡", "approx": "≈",
	"cong": "≅", "simeq": "≃", "sim": "∼", "propto": "∝",
	"ll": "≪", "gg": "≫", "prec": "≺", "succ": "≻",
	"subset": "⊂", "supset": "⊃", "subseteq": "⊆", "supseteq": "⊇",
	"in": "∈", "notin": "∉", "ni": "∋", "perp": "⊥",
	"parallel": "∥", "mid": "∣", "asymp": "≍", "doteq": "≐",

	// 箭头
	"to": "→", "rightarrow": "→", "leftarrow": "←", "gets": "←",
	"Rightarrow": "⇒", "Leftarrow": "⇐",
	"leftrightarrow": "↔", "Leftrightarrow": "⇔", "iff": "⇔",
	"mapsto": "↦", "uparrow": "↑", "downarrow": "↓",
	"longrightarrow": "⟶", "longleftarrow": "⟵", "hookrightarrow": "↪",
	"rightharpoonup": "⇀", "leadsto": "⇝", "implies": "⟹",

	// 大型运算符
	"sum": "∑", "prod": "∏", "coprod": "∐",
	"int": "∫", "iint": "∬", "iiint": "∭", "oint": "∮",
	"bigcap": "⋂", "bigcup": "⋃", "bigwedge": "⋀", "bigvee": "⋁",
	"bigoplus": "⨁", "bigotimes": "⨂",

	// 杂项
	"infty": "∞", "partial": "∂", "nabla": "∇", "forall": "∀",
	"exists": "∃", "nexists": "∄", "neg": "¬", "lnot": "¬",
	"emptyset": "∅", "varnothing": "∅", "aleph": "ℵ", "hbar": "ℏ",
	"ell": "ℓ", "Re": "ℜ", "Im": "ℑ", "wp": "℘",
	"prime": "′", "angle": "∠", "measuredangle": "∡", "degree": "°",
	"triangle": "△", "square": "□", "diamond": "⋄",
	"top": "⊤", "bot": "⊥", "vdash": "⊢", "dashv": "⊣",
	"models": "⊨", "therefore": "∴", "because": "∵",
	"cdots": "⋯", "ldots": "…", "dots": "…", "vdots": "⋮", "ddots": "⋱",
	"langle": "⟨", "rangle": "⟩",
	"lceil": "⌈", "rceil": "⌉", "lfloor": "⌊", "rfloor": "⌋",
	"dagger": "†", "ddagger": "‡", "S": "§", "P": "¶",
	"checkmark": "✓", "bigstar": "★",

	// 函数名：按原样输出
	"sin": "sin", "cos": "cos", "tan": "tan", "cot": "cot",
	"sec": "sec", "csc": "csc", "arcsin": "arcsin", "arccos": "arccos",
	"arctan": "arctan", "sinh": "sinh", "cosh": "cosh", "tanh": "tanh",
	"log": "log", "ln": "ln", "lg": "lg", "exp": "exp",
	"lim": "lim", "limsup": "lim sup", "liminf": "lim inf",
	"sup": "sup", "inf": "inf", "min": "min", "max": "max",
	"arg": "arg", "det": "det", "dim": "dim", "deg": "deg",
	"gcd": "gcd", "ker": "ker", "mod": "mod", "Pr": "Pr",
}

// charEscapes 反斜杠加单个非字母字符的转义
var charEscapes = map[rune]string{
	'\\': "\n",
	'{':  "{",
	'}':  "}",
	'$':  "$",
	'%':  "%",
	'&':  "&",
	'#':  "#",
	'_':  "_",
	',':  " ",
	';':  " ",
	':':  " ",
	'!':  "",
	' ':  " ",
	'|':  "‖",
}

// NotMap \not 的常用组合，不在表里的加组合长斜线
var NotMap = map[string]string{
	"=": "≠", "<": "≮", ">": "≯",
	"∈": "∉", "∋": "∌", "≡": "≢", "∼": "≁",
	"⊂": "⊄", "⊃": "⊅", "⊆": "⊈", "⊇": "⊉",
	"≤": "≰", "≥": "≱",
}

// vulgarFractions 常用分数的现成 Unicode 字符
var vulgarFractions = map[string]string{
	"1/2": "½", "1/3": "⅓", "2/3": "⅔",
	"1/4": "¼", "3/4": "¾", "1/5": "⅕",
	"2/5": "⅖", "3/5": "⅗", "4/5": "⅘",
	"1/6": "⅙", "5/6": "⅚", "1/8": "⅛",
	"3/8": "⅜", "5/8": "⅝", "7/8": "⅞",
}

// Superscripts 可以整体转上标的字符
var Superscripts = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
	'+': '⁺', '-': '⁻', '=': '⁼', '(': '⁽', ')': '⁾',
	'n': 'ⁿ', 'i': 'ⁱ',
}

// Subscripts 可以整体转下标的字符
var Subscripts = map[rune]rune{
	'0': '₀', '1': '₁', '2': '₂', '3': '₃', '4': '₄',
	'5': '₅', '6': '₆', '7': '₇', '8': '₈', '9': '₉',
	'+': '₊', '-': '₋', '=': '₌', '(': '₍', ')': '₎',
	'a': 'ₐ', 'e': 'ₑ', 'h': 'ₕ', 'i': 'ᵢ', 'j': 'ⱼ',
	'k': 'ₖ', 'l': 'ₗ', 'm': 'ₘ', 'n': 'ₙ', 'o': 'ₒ',
	'p': 'ₚ', 'r': 'ᵣ', 's': 'ₛ', 't': 'ₜ', 'u': 'ᵤ',
	'v': 'ᵥ', 'x': 'ₓ',
}

// Styles 样式命令的字符映射，nil 表示原样输出
var Styles = map[string]map[rune]rune{
	"mathbb":     mathDoubleStruck,
	"mathbf":     mathBold,
	"bm":         mathBold,
	"boldsymbol": mathBold,
	"mathcal":    mathScript,
	"mathfrak":   mathFraktur,
	"mathit":     nil,
	"mathsf":     nil,
	"mathtt":     nil,
}

var (
	mathDoubleStruck = map[rune]rune{}
	mathBold         = map[rune]rune{}
	mathScript       = map[rune]rune{}
	mathFraktur      = map[rune]rune{}
)

func init() {
	for r := 'A'; r <= 'Z'; r++ {
		mathDoubleStruck[r] = 0x1D538 + r - 'A'
		mathBold[r] = 0x1D400 + r - 'A'
		mathScript[r] = 0x1D49C + r - 'A'
		mathFraktur[r] = 0x1D504 + r - 'A'
	}
	for r := 'a'; r <= 'z'; r++ {
		mathBold[r] = 0x1D41A + r - 'a'
		mathFraktur[r] = 0x1D51E + r - 'a'
	}
	for r := '0'; r <= '9'; r++ {
		mathDoubleStruck[r] = 0x1D7D8 + r - '0'
		mathBold[r] = 0x1D7CE + r - '0'
	}

	// 这些字母早于数学字母区进入 Unicode，留在 Letterlike Symbols 区
	for r, v := range map[rune]rune{
		'C': 'ℂ', 'H': 'ℍ', 'N': 'ℕ', 'P': 'ℙ', 'Q': 'ℚ', 'R': 'ℝ', 'Z': 'ℤ',
	} {
		mathDoubleStruck[r] = v
	}
	for r, v := range map[rune]rune{
		'B': 'ℬ', 'E': 'ℰ', 'F': 'ℱ', 'H': 'ℋ', 'I': 'ℐ',
		'L': 'ℒ', 'M': 'ℳ', 'R': 'ℛ', 'g': 'ℊ', 'o': 'ℴ',
	} {
		mathScript[r] = v
	}
	for r, v := range map[rune]rune{
		'C': 'ℭ', 'H': 'ℌ', 'I': 'ℑ', 'R': 'ℜ', 'Z': 'ℨ',
	} {
		mathFraktur[r] = v
	}
}
