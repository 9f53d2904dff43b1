package domain

// DigitPair is exactly two ASCII digits. Values are only produced by the
// transformer or taken from the static catalogues.
type DigitPair string

// PairOf builds a pair from two digit bytes.
func PairOf(a, b byte) DigitPair {
	return DigitPair([]byte{a, b})
}

// First returns the leading digit.
func (p DigitPair) First() byte { return p[0] }

// Second returns the trailing digit.
func (p DigitPair) Second() byte { return p[1] }

// Valid reports whether p is two ASCII digits.
func (p DigitPair) Valid() bool {
	return len(p) == 2 && isDigit(p[0]) && isDigit(p[1])
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// FieldInfo is descriptive metadata for display. The algorithm never reads it.
type FieldInfo struct {
	Keywords           []string `json:"keywords"`
	Strengths          string   `json:"strengths"`
	Weaknesses         string   `json:"weaknesses"`
	FinancialStrategy  string   `json:"financial_strategy"`
	RelationshipAdvice string   `json:"relationship_advice"`
}

type fieldEntry struct {
	pairs []DigitPair
	info  FieldInfo
}

// Catalogue order is significant: the synthesizer enumerates candidates in
// this order, so seeded runs are reproducible.
var catalogue = map[Field]fieldEntry{
	FieldResting: {
		pairs: []DigitPair{"00", "11", "22", "33", "44", "66", "77", "88", "99"},
		info: FieldInfo{
			Keywords:           []string{"蓄勢待發", "狀況延續", "臥虎藏龍"},
			Strengths:          "有耐心、責任心強、幽默風趣、善於溝通協調",
			Weaknesses:         "矛盾交錯、沒有安全感、主觀意識強、作風保守",
			FinancialStrategy:  "耐心積累，穩健投資，適合選擇風險較低、回報穩定的金融產品",
			RelationshipAdvice: "尋求穩定與安全感，在互動中需要耐心溝通",
		},
	},
	FieldLifeForce: {
		pairs: []DigitPair{"14", "41", "67", "76", "39", "93", "28", "82"},
		info: FieldInfo{
			Keywords:           []string{"貴人", "轉機", "好名聲"},
			Strengths:          "樂天派、凡事不強求、熱心助人、擁有好人緣",
			Weaknesses:         "企圖心不旺盛，由於對任何事不強求隨遇而安",
			FinancialStrategy:  "積極開拓，慎選機遇，避免盲目跟風",
			RelationshipAdvice: "積極互動，珍惜緣分，避免過度追求新鮮感",
		},
	},
	FieldHeavenDoctor: {
		pairs: []DigitPair{"13", "31", "68", "86", "49", "94", "27", "72"},
		info: FieldInfo{
			Keywords:           []string{"主大才", "天生聰穎", "文筆好"},
			Strengths:          "賺錢有如神助、諸事順遂、外型氣質俱佳",
			Weaknesses:         "極度善良，偶爾會被蒙騙",
			FinancialStrategy:  "智慧投資，行善積福，防範詐騙",
			RelationshipAdvice: "關懷對方，共同成長，給予情感支持",
		},
	},
	FieldLongevity: {
		pairs: []DigitPair{"19", "91", "78", "87", "34", "43", "26", "62"},
		info: FieldInfo{
			Keywords:           []string{"意志堅定的領袖格局"},
			Strengths:          "決斷力強、內斂成熟",
			Weaknesses:         "缺少彈性變通，做事強勢，一板一眼",
			FinancialStrategy:  "領導風範，規劃未來，長期財務規劃",
			RelationshipAdvice: "領導與支持，平衡關係，聆聽對方意見",
		},
	},
	FieldDoom: {
		pairs: []DigitPair{"12", "21", "69", "96", "84", "48", "37", "73"},
		info: FieldInfo{
			Keywords:           []string{"高IQ低EQ", "大起大落的極端特質"},
			Strengths:          "反應靈敏、善於謀略，重視精神層面",
			Weaknesses:         "缺乏圓融、執著己見",
			FinancialStrategy:  "冷靜應對，規避風險，避免情緒化決策",
			RelationshipAdvice: "情緒管理，避免極端，冷靜處理糾紛",
		},
	},
	FieldSixEvils: {
		pairs: []DigitPair{"16", "61", "74", "47", "38", "83", "92", "29"},
		info: FieldInfo{
			Keywords:           []string{"情感", "婚姻", "人際關係方面糾葛"},
			Strengths:          "異性緣特別好、具有俊男美女的外貌",
			Weaknesses:         "總是為情所困，感情、事業、工作不順遂",
			FinancialStrategy:  "和諧人際，謹慎合作，明確權責界限",
			RelationshipAdvice: "和諧相處，避免糾纏，設定清晰界限",
		},
	},
	FieldCalamity: {
		pairs: []DigitPair{"17", "71", "98", "89", "64", "46", "32", "23"},
		info: FieldInfo{
			Keywords:           []string{"口舌", "病弱", "心機"},
			Strengths:          "辯才無礙、能言善道",
			Weaknesses:         "口舌之爭不斷、身體狀況不佳",
			FinancialStrategy:  "口才服人，謹慎決策，避免過度自信",
			RelationshipAdvice: "慎選言辭，避免衝突，注意言辭影響",
		},
	},
	FieldFiveGhosts: {
		pairs: []DigitPair{"18", "81", "97", "79", "36", "63", "42", "24"},
		info: FieldInfo{
			Keywords:           []string{"最有才華但最不穩定", "際遇波折"},
			Strengths:          "鬼才洋溢、快速的學習力",
			Weaknesses:         "變動太快，難以產生安定力量",
			FinancialStrategy:  "創新思維，謹慎投資，避免忽視風險",
			RelationshipAdvice: "創新互動，忠誠為本，保持透明度",
		},
	},
}

var pairIndex = buildPairIndex()

func buildPairIndex() map[DigitPair]Field {
	idx := make(map[DigitPair]Field, 72)
	for _, f := range Fields {
		for _, p := range catalogue[f].pairs {
			if prev, dup := idx[p]; dup {
				panic("domain: pair " + string(p) + " in both " + prev.String() + " and " + f.String())
			}
			idx[p] = f
		}
	}
	return idx
}

// Catalogue returns a copy of the pairs owned by f. Unknown owns none.
func Catalogue(f Field) []DigitPair {
	src := catalogue[f].pairs
	out := make([]DigitPair, len(src))
	copy(out, src)
	return out
}

// FieldOf classifies a single pair.
func FieldOf(p DigitPair) Field {
	if f, ok := pairIndex[p]; ok {
		return f
	}
	return FieldUnknown
}

// Info returns display metadata for f. Unknown has an empty FieldInfo.
func (f Field) Info() FieldInfo {
	info := catalogue[f].info
	info.Keywords = append([]string(nil), info.Keywords...)
	return info
}
