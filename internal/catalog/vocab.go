package catalog

// Vocabularies used by segmentation, note synthesis, and date resolution.
// Slice order is match-priority order everywhere.

// SpecificTimeMarkers are meal/time-of-day words that can anchor one
// transaction each in a "各" (each) utterance.
var SpecificTimeMarkers = []string{"早饭", "早上", "中午", "午饭", "下午", "晚上", "晚饭"}

// GenericDayWords name a whole day and act as shared context for every
// transaction in an utterance; they never anchor a split on their own.
var GenericDayWords = []string{"昨天", "今天", "明天"}

// Connectors join two halves of an equal-amount utterance ("A和B各20元").
var Connectors = []string{"和", "跟"}

// Separators, in trial order, split a multi-amount utterance into one piece
// per transaction. The spaced "和" avoids cutting inside words like 和面.
var Separators = []string{"，", ",", "还有", "另外", "然后", "接着", "再", " 和 "}

// BoundaryTimeWords locate the start of a second transaction between two
// amounts when no separator is present.
var BoundaryTimeWords = []string{"晚上", "下午", "早上", "中午", "上午"}

// ActivityKeywords describe what money was spent on in a "各" utterance.
var ActivityKeywords = []string{"吃饭", "喝咖啡", "喝奶茶", "打车", "看电影", "唱歌", "买菜", "健身"}

// DefaultActivity is synthesized when a "各" utterance names no activity.
const DefaultActivity = "吃饭"

// ConsumptionVerbs mark a segment as already describing a purchase or meal,
// so no activity needs to be injected.
var ConsumptionVerbs = []string{"吃", "喝", "买", "打车", "看", "玩", "花"}

// TimeWords, ActionWords and PlaceWords feed note synthesis: at most one
// word from each vocabulary, in this order, forms the note.
var (
	TimeWords = []string{
		"早饭", "午饭", "晚饭", "早上", "上午", "中午", "下午", "晚上", "凌晨", "夜宵",
	}
	ActionWords = []string{
		"吃饭", "打车", "加油", "买菜", "看电影", "唱歌", "健身", "理发",
		"充话费", "看病", "买药", "购物", "点外卖",
	}
	PlaceWords = []string{
		"超市", "餐厅", "饭店", "食堂", "医院", "药店", "学校", "公司",
		"商场", "地铁站", "机场", "加油站",
	}
)

// MeaningfulWords are nouns worth keeping as a note when nothing else
// survives cleanup.
var MeaningfulWords = []string{
	"咖啡", "奶茶", "电影", "火锅", "外卖", "房租", "水果", "衣服", "书",
	"话费", "门票", "机票", "快递",
}

// FillerWords are removed before deciding whether any real content remains.
var FillerWords = []string{
	"花了", "用了", "付了", "支付了", "支付", "消费", "一共", "总共",
	"大概", "左右", "今天", "昨天", "明天", "了", "的", "花", "付",
}

// StripVerbs are removed from input before retrying a custom-category
// substring match, so "买猫粮" still matches a "猫粮" category.
var StripVerbs = []string{"购买", "花钱", "支付", "买"}

// ImportantKeywords match a custom category even when no other strategy
// fires, covering short names like "ai" that substring checks miss.
var ImportantKeywords = []string{"ai", "工具", "学习", "课程", "培训"}

// DefaultNotes maps a category to the note used when the transcript yields
// nothing usable.
var DefaultNotes = map[string]string{
	"餐饮":   "用餐",
	"交通":   "出行",
	"娱乐":   "娱乐消费",
	"租房水电": "房租水电",
	"生活":   "生活用品",
	"医疗":   "就医买药",
	"教育":   "学习教育",
	"购物":   "购物消费",
}

// FallbackNote is used when DefaultNotes has no entry for the category.
const FallbackNote = "日常消费"
