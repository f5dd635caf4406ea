package blizzard

import "time"

const auctionStatusPathFormat = "/auction/data/%s"

// AuctionStatus returns a link to the latest auction house data dump for the given realm
func (c Client) AuctionStatus(realm string) (Resource, error) {
	return c.Fetch(slugPath(auctionStatusPathFormat, realm), nil)
}

// AuctionInfo describes the auction-info returned from the api
type AuctionInfo struct {
	Files []AuctionFile `json:"files"`
}

// AuctionFile points to the url for fetching auctions
type AuctionFile struct {
	URL          string `json:"url"`
	LastModified int64  `json:"lastModified"`
}

// LastModifiedAsTime returns a parsed last-modified
func (aFile AuctionFile) LastModifiedAsTime() time.Time {
	return time.Unix(aFile.LastModified/1000, 0)
}

// AuctionStatusInfo decodes the auction status of a realm
func (c Client) AuctionStatusInfo(realm string) (AuctionInfo, error) {
	aInfo := AuctionInfo{}
	if err := c.FetchInto(slugPath(auctionStatusPathFormat, realm), nil, &aInfo); err != nil {
		return AuctionInfo{}, err
	}

	return aInfo, nil
}
