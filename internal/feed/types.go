package feed

import "encoding/xml"

const (
	nsContent = "http://purl.org/rss/1.0/modules/content/"
	nsMedia   = "http://search.yahoo.com/mrss/"
)

// rss - корневой элемент RSS 2.0.
// Префиксы content/media объявляются на корне, имена элементов пишутся с префиксом.
type rss struct {
	XMLName   xml.Name `xml:"rss"`
	Version   string   `xml:"version,attr"`
	NSContent string   `xml:"xmlns:content,attr"`
	NSMedia   string   `xml:"xmlns:media,attr"`
	Channel   channel  `xml:"channel"`
}

// channel - RSS-канал со списком статей.
type channel struct {
	Title         string `xml:"title"`
	Link          string `xml:"link"`
	Description   string `xml:"description"`
	Language      string `xml:"language"`
	LastBuildDate string `xml:"lastBuildDate,omitempty"`
	Items         []item `xml:"item"`
}

// item - одна статья в ленте.
type item struct {
	Title string `xml:"title"`
	Link  string `xml:"link"`
	// GUID - id статьи; не является ссылкой.
	GUID    guid   `xml:"guid"`
	PubDate string `xml:"pubDate,omitempty"`
	// Description - текстовый тизер без HTML.
	Description string   `xml:"description"`
	Categories  []string `xml:"category"`
	// ContentHTML - полный HTML статьи в CDATA.
	ContentHTML cdata        `xml:"content:encoded"`
	MediaThumbs []mediaEntry `xml:"media:thumbnail,omitempty"`
}

type guid struct {
	IsPermaLink string `xml:"isPermaLink,attr"`
	Value       string `xml:",chardata"`
}

type cdata struct {
	Value string `xml:",cdata"`
}

// mediaEntry - элемент Media RSS (media:thumbnail).
type mediaEntry struct {
	URL string `xml:"url,attr"`
}
