package feed

import (
	"context"
	"strings"

	"github.com/frasehub/frasehub/internal/ads"
	"github.com/frasehub/frasehub/internal/app"
	"github.com/frasehub/frasehub/internal/db"
	"github.com/frasehub/frasehub/internal/engagement"
	svcErr "github.com/frasehub/frasehub/internal/errors"
	pb "github.com/frasehub/frasehub/internal/proto/feed"
	"github.com/frasehub/frasehub/internal/repository"
	"github.com/frasehub/frasehub/internal/shortcode"
	"github.com/frasehub/frasehub/internal/utils/pagination"
	"github.com/frasehub/frasehub/internal/viewtracker"
)

// maxPageSize caps client-requested page sizes.
const maxPageSize = 100

// Service implements the Feed gRPC API: the searchable ad-interleaved
// feed, permalink resolution and engagement operations.
type Service struct {
	appCtx  *app.AppContext
	quotes  *repository.QuoteRepository
	engage  *engagement.Store
	tracker *viewtracker.Tracker

	pb.UnimplementedFeedServiceServer
}

// NewFeedService creates a new Feed service with dependencies from AppContext.
func NewFeedService(appCtx *app.AppContext) *Service {
	engage := engagement.NewStore(appCtx.DB, appCtx.RedisCache, appCtx.RedisCache, appCtx.Logger)
	tracker := viewtracker.New(appCtx.Config.View.Delay, func(ctx context.Context, quoteID string, viewer engagement.Viewer) error {
		_, err := engage.RegisterView(ctx, quoteID, viewer)
		return err
	}, appCtx.Logger)

	return &Service{
		appCtx:  appCtx,
		quotes:  repository.NewQuoteRepository(appCtx.DB),
		engage:  engage,
		tracker: tracker,
	}
}

// ListQuotes returns one feed page plus the ad slot positions for it.
//
// Behavior:
//   - Pages are keyed by (search_term, page, page_size); a page_token
//     resumes a previous listing and pins the term it was issued for.
//   - Empty term: newest-first visible quotes. Non-empty term: the
//     deduplicated two-source union (content match, author-name match).
//   - ad_positions follows the configured frequency; 0 disables ads.
func (s *Service) ListQuotes(ctx context.Context, req *pb.ListQuotesRequest) (*pb.ListQuotesResponse, error) {
	term := strings.TrimSpace(req.GetSearchTerm())
	page := int(req.GetPage())

	if token := req.GetPageToken(); token != "" {
		cursor, err := pagination.Decode(token)
		if err != nil {
			return nil, svcErr.InvalidArgument("invalid page token")
		}
		if term != "" && term != cursor.Term {
			// a token from a superseded search must not leak results
			// into the new one
			return nil, svcErr.InvalidArgument("page token was issued for a different search term")
		}
		term = cursor.Term
		page = cursor.Page
	}

	pageSize := int(req.GetPageSize())
	if pageSize <= 0 {
		pageSize = s.appCtx.Config.Feed.PageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	s.appCtx.Logger.Debug("ListQuotes called", "term", term, "page", page, "page_size", pageSize)

	quotes, hasMore, err := s.quotes.FetchPage(ctx, term, page, pageSize)
	if err != nil {
		s.appCtx.Logger.Error("FetchPage failed", "err", err)
		return nil, svcErr.Map(err)
	}

	resp := &pb.ListQuotesResponse{HasMore: hasMore}
	for _, q := range quotes {
		resp.Quotes = append(resp.Quotes, toProtoQuote(q))
	}
	for _, pos := range ads.Positions(len(quotes), s.appCtx.Config.Ads.Frequency) {
		resp.AdPositions = append(resp.AdPositions, int32(pos))
	}
	if hasMore {
		token, err := pagination.Encode(pagination.Cursor{Term: term, Page: page + 1})
		if err != nil {
			return nil, svcErr.Map(err)
		}
		resp.NextPageToken = token
	}

	s.appCtx.Logger.Debug("ListQuotes result", "count", len(resp.Quotes), "has_more", hasMore)
	return resp, nil
}

// GetQuoteByCode resolves a shareable permalink code to its quote.
//
// There is no inverse of the code function and no persisted code column:
// resolution fetches the visible set and recomputes codes until one
// matches. When two visible quotes collide on a code the first in the
// store's default order wins; zero matches is an ordinary NotFound.
func (s *Service) GetQuoteByCode(ctx context.Context, req *pb.GetQuoteByCodeRequest) (*pb.GetQuoteByCodeResponse, error) {
	code := req.GetPublicCode()
	if !shortcode.Valid(code) {
		return nil, svcErr.InvalidArgument("public_code must be 5 decimal digits")
	}

	candidates, err := s.quotes.ListVisible(ctx)
	if err != nil {
		s.appCtx.Logger.Error("ListVisible failed", "err", err)
		return nil, svcErr.Map(err)
	}

	for _, q := range candidates {
		if shortcode.Encode(q.ID) == code {
			return &pb.GetQuoteByCodeResponse{Quote: toProtoQuote(q)}, nil
		}
	}
	return nil, svcErr.NotFound("no quote with this code")
}

// PublishQuote creates a quote owned by the account's author profile.
// New quotes start pending moderation and are not feed-visible yet.
func (s *Service) PublishQuote(ctx context.Context, req *pb.PublishQuoteRequest) (*pb.PublishQuoteResponse, error) {
	content := strings.TrimSpace(req.GetContent())
	if content == "" {
		return nil, svcErr.InvalidArgument("content must not be empty")
	}
	if req.GetAccountId() == "" {
		return nil, svcErr.InvalidArgument("account_id must not be empty")
	}

	viewer, err := s.engage.ResolveViewer(ctx, req.GetAccountId())
	if err != nil {
		return nil, svcErr.Map(err)
	}

	quote := db.Quote{
		AuthorID:   viewer.AuthorID,
		Content:    content,
		Notes:      strings.TrimSpace(req.GetNotes()),
		IsApproved: false,
		IsActive:   true,
	}
	if err := s.quotes.Create(ctx, &quote); err != nil {
		s.appCtx.Logger.Error("quote create failed", "err", err)
		return nil, svcErr.Map(err)
	}

	created, err := s.quotes.GetByID(ctx, quote.ID)
	if err != nil {
		return nil, svcErr.Map(err)
	}

	s.appCtx.Logger.Info("quote published", "quote_id", created.ID, "author_id", created.AuthorID)
	return &pb.PublishQuoteResponse{Quote: toProtoQuote(created)}, nil
}

// ToggleLike flips the viewer's like and returns the new state plus the
// like count after the toggle.
func (s *Service) ToggleLike(ctx context.Context, req *pb.ToggleLikeRequest) (*pb.ToggleLikeResponse, error) {
	if req.GetQuoteId() == "" {
		return nil, svcErr.InvalidArgument("quote_id must not be empty")
	}
	viewer, err := s.viewerFromProto(ctx, req.GetViewer())
	if err != nil {
		return nil, svcErr.Map(err)
	}

	liked, count, err := s.engage.ToggleLike(ctx, req.GetQuoteId(), viewer)
	if err != nil {
		return nil, svcErr.Map(err)
	}

	s.appCtx.Logger.Debug("ToggleLike", "quote_id", req.GetQuoteId(), "liked", liked, "count", count)
	return &pb.ToggleLikeResponse{Liked: liked, LikesCount: count}, nil
}

// HasReacted reports the viewer's current like state. A request without
// viewer identity reads as "not liked" so initial button state can
// render before identity resolution completes.
func (s *Service) HasReacted(ctx context.Context, req *pb.HasReactedRequest) (*pb.HasReactedResponse, error) {
	if req.GetQuoteId() == "" {
		return nil, svcErr.InvalidArgument("quote_id must not be empty")
	}
	if req.GetViewer() == nil {
		return &pb.HasReactedResponse{Reacted: false}, nil
	}
	viewer, err := s.viewerFromProto(ctx, req.GetViewer())
	if err != nil {
		return nil, svcErr.Map(err)
	}

	reacted, err := s.engage.HasReacted(ctx, req.GetQuoteId(), viewer)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.HasReactedResponse{Reacted: reacted}, nil
}

// RegisterView records one impression. Viewer identity is optional and
// views are never deduplicated per viewer.
func (s *Service) RegisterView(ctx context.Context, req *pb.RegisterViewRequest) (*pb.RegisterViewResponse, error) {
	if req.GetQuoteId() == "" {
		return nil, svcErr.InvalidArgument("quote_id must not be empty")
	}
	viewer := engagement.Viewer{}
	if req.GetViewer() != nil {
		var err error
		viewer, err = s.viewerFromProto(ctx, req.GetViewer())
		if err != nil {
			return nil, svcErr.Map(err)
		}
	}

	views, err := s.engage.RegisterView(ctx, req.GetQuoteId(), viewer)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.RegisterViewResponse{ViewsCount: views}, nil
}

// TrackView arms a deferred view registration and blocks until it
// resolves. The view only counts when the call survives the configured
// dwell delay; clients cancel the call when the quote leaves the
// screen, which drops the registration.
func (s *Service) TrackView(ctx context.Context, req *pb.TrackViewRequest) (*pb.TrackViewResponse, error) {
	if req.GetQuoteId() == "" {
		return nil, svcErr.InvalidArgument("quote_id must not be empty")
	}
	viewer := engagement.Viewer{}
	if req.GetViewer() != nil {
		var err error
		viewer, err = s.viewerFromProto(ctx, req.GetViewer())
		if err != nil {
			return nil, svcErr.Map(err)
		}
	}

	pending := s.tracker.Arm(ctx, req.GetQuoteId(), viewer)
	<-pending.Done()
	if pending.State() != viewtracker.StateFired {
		return &pb.TrackViewResponse{Registered: false}, nil
	}

	quote, err := s.quotes.GetByID(ctx, req.GetQuoteId())
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.TrackViewResponse{Registered: true, ViewsCount: quote.ViewsCount}, nil
}

// RegisterShare records a share to a platform and bumps shares_count.
func (s *Service) RegisterShare(ctx context.Context, req *pb.RegisterShareRequest) (*pb.RegisterShareResponse, error) {
	if req.GetQuoteId() == "" {
		return nil, svcErr.InvalidArgument("quote_id must not be empty")
	}
	if strings.TrimSpace(req.GetPlatform()) == "" {
		return nil, svcErr.InvalidArgument("platform must not be empty")
	}
	viewer := engagement.Viewer{}
	if req.GetViewer() != nil {
		var err error
		viewer, err = s.viewerFromProto(ctx, req.GetViewer())
		if err != nil {
			return nil, svcErr.Map(err)
		}
	}

	shares, err := s.engage.RegisterShare(ctx, req.GetQuoteId(), strings.TrimSpace(req.GetPlatform()), viewer)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.RegisterShareResponse{SharesCount: shares}, nil
}

// CountLikes returns a quote's like count, cache-first with DB fallback.
func (s *Service) CountLikes(ctx context.Context, req *pb.CountLikesRequest) (*pb.CountLikesResponse, error) {
	if req.GetQuoteId() == "" {
		return nil, svcErr.InvalidArgument("quote_id must not be empty")
	}
	count, err := s.engage.CountLikes(ctx, req.GetQuoteId())
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.CountLikesResponse{Count: count}, nil
}

// viewerFromProto resolves the wire identity into an engagement viewer.
// Account identities go through the account → author profile lookup and
// surface ErrProfileNotFound rather than degrading to anonymous.
func (s *Service) viewerFromProto(ctx context.Context, pv *pb.Viewer) (engagement.Viewer, error) {
	if pv == nil {
		return engagement.Viewer{}, nil
	}
	switch id := pv.GetIdentity().(type) {
	case *pb.Viewer_AccountId:
		if id.AccountId == "" {
			return engagement.Viewer{}, nil
		}
		return s.engage.ResolveViewer(ctx, id.AccountId)
	case *pb.Viewer_DeviceId:
		if id.DeviceId == "" {
			return engagement.Viewer{}, nil
		}
		return engagement.AnonViewer(id.DeviceId), nil
	default:
		return engagement.Viewer{}, nil
	}
}

func toProtoQuote(q db.Quote) *pb.Quote {
	out := &pb.Quote{
		Id:          q.ID,
		PublicCode:  shortcode.Encode(q.ID),
		Content:     q.Content,
		Notes:       q.Notes,
		ViewsCount:  q.ViewsCount,
		LikesCount:  q.LikesCount,
		SharesCount: q.SharesCount,
		CreatedAt:   q.CreatedAt.UnixMilli(),
	}
	if q.Author.ID != "" {
		out.Author = &pb.Author{
			Id:         q.Author.ID,
			Name:       q.Author.Name,
			AvatarUrl:  q.Author.AvatarURL,
			IsVerified: q.Author.IsVerified,
		}
	}
	return out
}
