package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Reader --dir ../domain/corpus --output domain/corpus --outpkg corpusmock --filename reader_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/warehouse --output domain/warehouse --outpkg warehousemock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Session --dir ../domain/warehouse --output domain/warehouse --outpkg warehousemock --filename session_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name AuditRepository --dir ../domain/warehouse --output domain/warehouse --outpkg warehousemock --filename audit_repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name ViewRepository --dir ../domain/warehouse --output domain/warehouse --outpkg warehousemock --filename view_repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name ViewWriter --dir ../domain/warehouse --output domain/warehouse --outpkg warehousemock --filename view_writer_mock.go
